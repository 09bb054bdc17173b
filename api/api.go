package api

import (
	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/api/httpapi"
	"github.com/velascoluis/data-roster/api/httpapi/handlers"
	"github.com/velascoluis/data-roster/metrics"
)

// Dependencies carries the request-scoped collaborators of the HTTP
// surface. Client lifecycles are owned by the caller, not the engine.
type Dependencies struct {
	Logger             log.Logger
	Version            string
	DataProductService handlers.DataProductService
	ProfileService     handlers.ProfileService
	LineageService     handlers.LineageService
}

func NewHTTPHandlers(deps *Dependencies) *httpapi.Handler {
	return &httpapi.Handler{
		DataProduct: handlers.NewDataProductHandler(deps.Logger, deps.DataProductService),
		Profile:     handlers.NewProfileHandler(deps.Logger, deps.ProfileService),
		Lineage:     handlers.NewLineageHandler(deps.Logger, deps.LineageService),
		Root:        handlers.NewRootHandler(deps.Version),
	}
}

func RegisterHTTPRoutes(router *mux.Router, deps *Dependencies, monitor *metrics.Monitor) {
	if monitor != nil {
		router.Use(MonitoringMiddleware(monitor))
	}
	httpapi.RegisterRoutes(router, NewHTTPHandlers(deps))
}
