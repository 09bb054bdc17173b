package dataproduct

import (
	"context"
	"time"

	"github.com/velascoluis/data-roster/lib/set"
)

const (
	labelProductName = "dataproduct-name"
	labelProductKind = "dataproduct-kind"
	labelProductTeam = "dataproduct-team"

	defaultKind = "source-aligned"
	defaultTeam = "Unassigned"

	// warehouseSystem is the entry-source system value that marks an entry
	// as warehouse-backed. Matched case-insensitively.
	warehouseSystem = "BIGQUERY"

	// bigqueryEntryGroupID is the system-managed entry group that holds one
	// entry per BigQuery table in a location.
	bigqueryEntryGroupID = "@bigquery"
)

// EntrySource is the optional source descriptor attached to a catalog entry.
// A zero CreateTime means upstream did not populate the field.
type EntrySource struct {
	System      string
	Resource    string
	DisplayName string
	Labels      map[string]string
	CreateTime  time.Time
}

// CatalogEntry is the read-only shape of one metadata catalog entry as the
// catalog service returns it. Source is nil when the entry carries no
// source descriptor at all.
type CatalogEntry struct {
	Name      string
	EntryType string
	Source    *EntrySource
}

// ComponentSource mirrors the entry source after normalization, with every
// optional field collapsed to a documented default.
type ComponentSource struct {
	System   string            `json:"system"`
	Resource string            `json:"resource"`
	Labels   map[string]string `json:"labels"`
}

// Component is the canonical record derived from one qualifying catalog
// entry. Built fresh per request and never mutated afterwards.
type Component struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	CreatedAt string            `json:"created_at"`
	Source    ComponentSource   `json:"source"`
	Labels    map[string]string `json:"labels"`
}

// DataProduct groups the components that share a product-name label, with
// ownership and classification resolved from component labels.
type DataProduct struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Kind       string        `json:"kind"`
	Team       string        `json:"team"`
	Components []Component   `json:"components"`
	Tags       set.StringSet `json:"tags"`
	CreatedAt  string        `json:"created_at"`
}

// CatalogRepository is the read boundary to the metadata catalog service.
type CatalogRepository interface {
	// ListEntryGroups returns the names of all entry groups under
	// "projects/{project}/locations/{location}".
	ListEntryGroups(ctx context.Context, parent string) ([]string, error)
	// ListEntries returns all entries of one entry group, preserving the
	// order the catalog returns them in.
	ListEntries(ctx context.Context, parent string) ([]CatalogEntry, error)
}
