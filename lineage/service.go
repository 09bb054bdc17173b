package lineage

import (
	"context"
	"fmt"
	"strings"

	"github.com/odpf/salt/log"

	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/lib/fqn"
)

// TableFinder locates the catalog entry of a warehouse table. Satisfied by
// dataproduct.Service.
type TableFinder interface {
	FindTableEntry(ctx context.Context, projectID, location, tableID string) (*dataproduct.CatalogEntry, error)
}

// Service resolves the inbound lineage of one table.
type Service struct {
	logger log.Logger
	repo   Repository
	finder TableFinder
}

func NewService(logger log.Logger, repo Repository, finder TableFinder) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
		finder: finder,
	}
}

// TableLineage finds the inbound lineage links of a table and resolves
// each originating process into a source/process pair. Lineage is
// best-effort: a missing catalog entry or any failure in the lineage
// sub-lookups degrades to an empty graph instead of propagating.
func (s *Service) TableLineage(ctx context.Context, projectID, location, tableID string) (Graph, error) {
	empty := Graph{Sources: []string{}, Processes: []Process{}}

	entry, err := s.finder.FindTableEntry(ctx, projectID, location, tableID)
	if err != nil {
		s.logger.Warn("error locating catalog entry for lineage", "table_id", tableID, "error", err)
		return empty, nil
	}
	if entry == nil || entry.Source == nil {
		s.logger.Warn("no matching catalog entry for table", "table_id", tableID)
		return empty, nil
	}

	tableFQN := fqn.FromResource(entry.Source.Resource)
	return s.resolve(ctx, projectID, location, tableFQN), nil
}

func (s *Service) resolve(ctx context.Context, projectID, location, tableFQN string) Graph {
	empty := Graph{Sources: []string{}, Processes: []Process{}}

	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, location)
	target := fqnPrefix + tableFQN

	links, err := s.repo.SearchLinks(ctx, parent, target)
	if err != nil {
		s.logger.Error("error searching lineage links", "target", target, "error", err)
		return empty
	}

	sources := []string{}
	processes := []Process{}
	for _, link := range links {
		if link.Target != target {
			continue
		}
		sources = append(sources, strings.TrimPrefix(link.Source, fqnPrefix))

		processNames, err := s.repo.LinkProcesses(ctx, parent, link.Name)
		if err != nil {
			s.logger.Error("error resolving lineage link processes", "link", link.Name, "error", err)
			return empty
		}
		for _, name := range processNames {
			details, err := s.repo.GetProcess(ctx, name)
			if err != nil {
				s.logger.Error("error fetching lineage process", "process", name, "error", err)
				return empty
			}
			processes = append(processes, toProcess(details))
		}
	}

	return Graph{Sources: sources, Processes: processes}
}

func toProcess(details ProcessDetails) Process {
	process := Process{
		ID:  "unknown",
		SQL: details.DisplayName,
	}
	if id, ok := details.Attributes[jobIDAttribute]; ok {
		process.ID = id
	}
	if v, ok := details.Attributes[startTimeAttribute]; ok {
		process.StartTime = v
	}
	if v, ok := details.Attributes[endTimeAttribute]; ok {
		process.EndTime = v
	}
	return process
}
