package scan

import (
	"context"
	"fmt"

	"github.com/velascoluis/data-roster/lib/fqn"
)

// FindScans returns the names of every scan definition bound to the given
// table. The binding is an exact string match between the scan's resource
// and the canonical BigQuery resource URI built from the FQN; no casing or
// slash normalization is applied. A malformed FQN is a terminal error.
func FindScans(ctx context.Context, repo Repository, tableFQN, projectID, location string) ([]string, error) {
	resource, err := fqn.BigQueryResource(tableFQN)
	if err != nil {
		return nil, err
	}

	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, location)
	scans, err := repo.ListScans(ctx, parent)
	if err != nil {
		return nil, err
	}

	var references []string
	for _, s := range scans {
		if s.Resource == resource {
			references = append(references, s.Name)
		}
	}
	return references, nil
}
