package warehouse

import "context"

// Column describes one column of a warehouse table schema.
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Mode        string `json:"mode"`
	Description string `json:"description"`
}

// TableSchema is the schema of one warehouse table as surfaced to the UI.
type TableSchema struct {
	Fields      []Column `json:"fields"`
	Description string   `json:"description"`
}

// MetadataRepository is the read boundary to the warehouse metadata
// lookup. GetTable returns (nil, nil) when the table does not exist, which
// surfaces as a null schema in the response.
type MetadataRepository interface {
	GetTable(ctx context.Context, tableFQN string) (*TableSchema, error)
}
