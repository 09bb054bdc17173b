package bigquery

import (
	"context"
	"errors"
	"net/http"

	bq "cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/velascoluis/data-roster/lib/fqn"
	"github.com/velascoluis/data-roster/warehouse"
)

// MetadataRepository implements warehouse.MetadataRepository on top of the
// BigQuery client.
type MetadataRepository struct {
	client *bq.Client
}

var _ warehouse.MetadataRepository = (*MetadataRepository)(nil)

func NewMetadataRepository(client *bq.Client) *MetadataRepository {
	return &MetadataRepository{client: client}
}

func (r *MetadataRepository) GetTable(ctx context.Context, tableFQN string) (*warehouse.TableSchema, error) {
	project, dataset, table, err := fqn.Split(tableFQN)
	if err != nil {
		return nil, err
	}

	metadata, err := r.client.DatasetInProject(project, dataset).Table(table).Metadata(ctx)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	schema := &warehouse.TableSchema{
		Fields:      make([]warehouse.Column, 0, len(metadata.Schema)),
		Description: metadata.Description,
	}
	for _, field := range metadata.Schema {
		schema.Fields = append(schema.Fields, warehouse.Column{
			Name:        field.Name,
			Type:        string(field.Type),
			Mode:        fieldMode(field),
			Description: field.Description,
		})
	}
	return schema, nil
}

func fieldMode(field *bq.FieldSchema) string {
	switch {
	case field.Repeated:
		return "REPEATED"
	case field.Required:
		return "REQUIRED"
	}
	return "NULLABLE"
}
