package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	bq "cloud.google.com/go/bigquery"
	lineageapi "cloud.google.com/go/datacatalog/lineage/apiv1"
	dataplexapi "cloud.google.com/go/dataplex/apiv1"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/velascoluis/data-roster/api"
	"github.com/velascoluis/data-roster/config"
	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/internal/store/bigquery"
	"github.com/velascoluis/data-roster/internal/store/datacatalog"
	"github.com/velascoluis/data-roster/internal/store/dataplex"
	"github.com/velascoluis/data-roster/lineage"
	"github.com/velascoluis/data-roster/metrics"
	"github.com/velascoluis/data-roster/scan"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the data roster HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("data-roster starting", "version", Version)

	// credentials are resolved once here and handed to every client;
	// the engine itself never touches credential state
	credentials, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return fmt.Errorf("resolving default credentials: %w", err)
	}
	clientOpts := []option.ClientOption{option.WithCredentials(credentials)}

	catalogClient, err := dataplexapi.NewCatalogClient(ctx, clientOpts...)
	if err != nil {
		return fmt.Errorf("creating catalog client: %w", err)
	}
	defer catalogClient.Close()

	scanClient, err := dataplexapi.NewDataScanClient(ctx, clientOpts...)
	if err != nil {
		return fmt.Errorf("creating data scan client: %w", err)
	}
	defer scanClient.Close()

	lineageClient, err := lineageapi.NewClient(ctx, clientOpts...)
	if err != nil {
		return fmt.Errorf("creating lineage client: %w", err)
	}
	defer lineageClient.Close()

	bqClient, err := bq.NewClient(ctx, bq.DetectProjectID, clientOpts...)
	if err != nil {
		return fmt.Errorf("creating bigquery client: %w", err)
	}
	defer bqClient.Close()

	catalogRepo := dataplex.NewCatalogRepository(catalogClient, int32(cfg.CatalogPageSize))
	scanRepo := dataplex.NewScanRepository(scanClient)
	lineageRepo := datacatalog.NewLineageRepository(lineageClient)
	metadataRepo := bigquery.NewMetadataRepository(bqClient)

	dataProductService := dataproduct.NewService(logger, catalogRepo)
	profileService := scan.NewService(logger, scan.Config{LatestOnly: cfg.ScanLatestOnly}, scanRepo, dataProductService, metadataRepo)
	lineageService := lineage.NewService(logger, lineageRepo, dataProductService)

	router := mux.NewRouter()
	api.RegisterHTTPRoutes(router, &api.Dependencies{
		Logger:             logger,
		Version:            Version,
		DataProductService: dataProductService,
		ProfileService:     profileService,
		LineageService:     lineageService,
	}, initMonitor(cfg, logger))

	var handler http.Handler = router
	if cfg.CORSEnabled {
		handler = gorillahandlers.CORS(
			gorillahandlers.AllowedOrigins([]string{"*"}),
			gorillahandlers.AllowedMethods([]string{http.MethodGet}),
			gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
		)(router)
	}

	serverAddr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", serverAddr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func initLogger(logLevel string) *log.Logrus {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
}

func initMonitor(cfg config.Config, logger log.Logger) *metrics.Monitor {
	if !cfg.StatsdEnabled {
		return nil
	}
	client, err := metrics.NewStatsdClient(cfg.StatsdAddress, cfg.StatsdPrefix)
	if err != nil {
		logger.Warn("could not create statsd client, metrics disabled", "error", err)
		return nil
	}
	return metrics.NewMonitor(client)
}
