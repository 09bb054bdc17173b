package dataproduct

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/odpf/salt/log"
)

// Service aggregates catalog entries into logical data products.
type Service struct {
	logger  log.Logger
	catalog CatalogRepository
}

func NewService(logger log.Logger, catalog CatalogRepository) *Service {
	return &Service{
		logger:  logger,
		catalog: catalog,
	}
}

// ListDataProducts walks every entry group in the location, keeps the
// warehouse-backed entries that declare a product-name label and groups
// them into data products. A group the caller cannot read is skipped with
// a warning; partial results are acceptable for listing. Top-level
// permission or existence failures are terminal.
func (s *Service) ListDataProducts(ctx context.Context, projectID, location string) ([]DataProduct, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, location)
	groups, err := s.catalog.ListEntryGroups(ctx, parent)
	if err != nil {
		return nil, err
	}

	componentsByProduct := map[string][]Component{}
	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := s.catalog.ListEntries(ctx, group)
		if err != nil {
			if errors.As(err, new(PermissionDeniedError)) {
				s.logger.Warn("permission denied for entry group, skipping", "entry_group", group, "error", err)
				continue
			}
			s.logger.Error("error processing entry group, skipping", "entry_group", group, "error", err)
			continue
		}

		for _, entry := range entries {
			if !IsQualifyingEntry(entry) {
				s.logger.Debug("skipping non-warehouse entry", "entry", entry.Name)
				continue
			}
			name, ok := ProductName(entry)
			if !ok {
				s.logger.Debug("skipping entry without data product label", "entry", entry.Name)
				continue
			}
			componentsByProduct[name] = append(componentsByProduct[name], Normalize(entry))
		}
	}

	products := make([]DataProduct, 0, len(componentsByProduct))
	for name, components := range componentsByProduct {
		products = append(products, Aggregate(name, components))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

// FindTableEntry locates the catalog entry of one warehouse table inside
// the system-managed BigQuery entry group. A missing entry is not an
// error: the caller receives nil and responds with an empty result.
func (s *Service) FindTableEntry(ctx context.Context, projectID, location, tableID string) (*CatalogEntry, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s/entryGroups/%s", projectID, location, bigqueryEntryGroupID)
	entries, err := s.catalog.ListEntries(ctx, parent)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name, "/tables/"+tableID) {
			found := entry
			return &found, nil
		}
	}

	return nil, nil
}
