package datacatalog

import (
	"context"
	"errors"

	lineageapi "cloud.google.com/go/datacatalog/lineage/apiv1"
	"cloud.google.com/go/datacatalog/lineage/apiv1/lineagepb"
	"google.golang.org/api/iterator"

	"github.com/velascoluis/data-roster/lineage"
)

// LineageRepository implements lineage.Repository on top of the Data
// Catalog lineage client.
type LineageRepository struct {
	client *lineageapi.Client
}

var _ lineage.Repository = (*LineageRepository)(nil)

func NewLineageRepository(client *lineageapi.Client) *LineageRepository {
	return &LineageRepository{client: client}
}

func (r *LineageRepository) SearchLinks(ctx context.Context, parent, target string) ([]lineage.Link, error) {
	it := r.client.SearchLinks(ctx, &lineagepb.SearchLinksRequest{
		Parent: parent,
		Criteria: &lineagepb.SearchLinksRequest_Target{
			Target: &lineagepb.EntityReference{
				FullyQualifiedName: target,
			},
		},
	})

	var links []lineage.Link
	for {
		link, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		links = append(links, lineage.Link{
			Name:   link.GetName(),
			Source: link.GetSource().GetFullyQualifiedName(),
			Target: link.GetTarget().GetFullyQualifiedName(),
		})
	}
	return links, nil
}

func (r *LineageRepository) LinkProcesses(ctx context.Context, parent, linkName string) ([]string, error) {
	it := r.client.BatchSearchLinkProcesses(ctx, &lineagepb.BatchSearchLinkProcessesRequest{
		Parent: parent,
		Links:  []string{linkName},
	})

	var processes []string
	for {
		pl, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		processes = append(processes, pl.GetProcess())
	}
	return processes, nil
}

func (r *LineageRepository) GetProcess(ctx context.Context, name string) (lineage.ProcessDetails, error) {
	process, err := r.client.GetProcess(ctx, &lineagepb.GetProcessRequest{
		Name: name,
	})
	if err != nil {
		return lineage.ProcessDetails{}, err
	}

	// process attributes of interest (job id, start/end times) are
	// string-valued
	attributes := make(map[string]string, len(process.GetAttributes()))
	for key, value := range process.GetAttributes() {
		if s := value.GetStringValue(); s != "" {
			attributes[key] = s
		}
	}

	return lineage.ProcessDetails{
		DisplayName: process.GetDisplayName(),
		Attributes:  attributes,
	}, nil
}
