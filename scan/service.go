package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/warehouse"
)

// Config tunes the result flattening behavior.
type Config struct {
	// LatestOnly keeps only the most recent succeeded job per scan instead
	// of the full history of succeeded runs. Off by default to preserve
	// the established full-history response.
	LatestOnly bool `mapstructure:"SCAN_LATEST_ONLY" default:"false"`
}

// TableFinder locates the catalog entry of a warehouse table. Satisfied by
// dataproduct.Service.
type TableFinder interface {
	FindTableEntry(ctx context.Context, projectID, location, tableID string) (*dataproduct.CatalogEntry, error)
}

// TableReport is the combined profile, quality and schema response for one
// table. Profiles and Quality are always non-nil; Schema is null when the
// table is unknown to the warehouse.
type TableReport struct {
	Profiles []FormattedProfile     `json:"data_profile"`
	Quality  []FormattedQuality     `json:"data_quality"`
	Schema   *warehouse.TableSchema `json:"schema"`
}

// Service locates the scans bound to a table and flattens their results.
type Service struct {
	logger    log.Logger
	config    Config
	repo      Repository
	finder    TableFinder
	warehouse warehouse.MetadataRepository
}

func NewService(logger log.Logger, config Config, repo Repository, finder TableFinder, metadataRepo warehouse.MetadataRepository) *Service {
	return &Service{
		logger:    logger,
		config:    config,
		repo:      repo,
		finder:    finder,
		warehouse: metadataRepo,
	}
}

// TableProfile resolves the table's catalog entry, looks up its schema and
// flattens the results of every succeeded scan job bound to it. A table
// without a catalog entry yields an empty report with a null schema, not
// an error.
func (s *Service) TableProfile(ctx context.Context, projectID, location, tableID string) (TableReport, error) {
	report := TableReport{
		Profiles: []FormattedProfile{},
		Quality:  []FormattedQuality{},
	}

	entry, err := s.finder.FindTableEntry(ctx, projectID, location, tableID)
	if err != nil {
		return report, err
	}
	if entry == nil || entry.Source == nil {
		s.logger.Warn("no matching catalog entry for table", "table_id", tableID)
		return report, nil
	}

	tableFQN, err := tableFQNFromEntry(entry, projectID, tableID)
	if err != nil {
		return report, err
	}

	schema, err := s.warehouse.GetTable(ctx, tableFQN)
	if err != nil {
		// schema lookup is supplemental; the profile path still answers
		s.logger.Error("error fetching table schema", "table", tableFQN, "error", err)
	}
	report.Schema = schema

	references, err := FindScans(ctx, s.repo, tableFQN, projectID, location)
	if err != nil {
		return report, err
	}

	for _, reference := range references {
		jobs, err := s.repo.ListJobs(ctx, reference)
		if err != nil {
			return report, err
		}

		for _, jobName := range jobs {
			job, err := s.repo.GetJob(ctx, jobName)
			if err != nil {
				return report, err
			}
			if job.State != StateSucceeded {
				continue
			}
			if job.Quality != nil {
				report.Quality = append(report.Quality, FlattenQuality(*job.Quality))
			}
			if job.Profile != nil {
				report.Profiles = append(report.Profiles, FlattenProfile(*job.Profile))
			}
			if s.config.LatestOnly {
				// jobs list most recent first
				break
			}
		}
	}

	return report, nil
}

// tableFQNFromEntry derives the table FQN the way the profile path always
// has: the requested project, the dataset taken from the entry's resource
// path, and the requested table ID.
func tableFQNFromEntry(entry *dataproduct.CatalogEntry, projectID, tableID string) (string, error) {
	parts := strings.Split(entry.Source.Resource, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("entry %q carries an unparseable resource %q", entry.Name, entry.Source.Resource)
	}
	dataset := parts[len(parts)-3]
	return fmt.Sprintf("%s.%s.%s", projectID, dataset, tableID), nil
}
