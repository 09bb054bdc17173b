package dataplex

import (
	"context"
	"errors"
	"time"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/velascoluis/data-roster/dataproduct"
)

const (
	defaultPageSize = 100

	// entry listing is the only call that retries; transient
	// unavailability from the catalog is common enough to bound-retry
	listEntriesMaxRetries = 3
	listEntriesMaxBackoff = 5 * time.Second
)

// CatalogRepository implements dataproduct.CatalogRepository on top of the
// Dataplex catalog client.
type CatalogRepository struct {
	client   *dataplex.CatalogClient
	pageSize int32
}

var _ dataproduct.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(client *dataplex.CatalogClient, pageSize int32) *CatalogRepository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &CatalogRepository{
		client:   client,
		pageSize: pageSize,
	}
}

func (r *CatalogRepository) ListEntryGroups(ctx context.Context, parent string) ([]string, error) {
	it := r.client.ListEntryGroups(ctx, &dataplexpb.ListEntryGroupsRequest{
		Parent: parent,
	})

	var groups []string
	for {
		group, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, parent)
		}
		groups = append(groups, group.GetName())
	}
	return groups, nil
}

func (r *CatalogRepository) ListEntries(ctx context.Context, parent string) ([]dataproduct.CatalogEntry, error) {
	var entries []dataproduct.CatalogEntry

	// the whole page walk restarts on retry so ordering within the listing
	// stays intact
	list := func() error {
		it := r.client.ListEntries(ctx, &dataplexpb.ListEntriesRequest{
			Parent:   parent,
			PageSize: r.pageSize,
		})

		collected := make([]dataproduct.CatalogEntry, 0)
		for {
			entry, err := it.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				if status.Code(err) == codes.Unavailable {
					return err
				}
				return backoff.Permanent(err)
			}
			collected = append(collected, toCatalogEntry(entry))
		}
		entries = collected
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = listEntriesMaxBackoff
	err := backoff.Retry(list, backoff.WithContext(backoff.WithMaxRetries(policy, listEntriesMaxRetries), ctx))
	if err != nil {
		return nil, translateError(err, parent)
	}
	return entries, nil
}

func toCatalogEntry(entry *dataplexpb.Entry) dataproduct.CatalogEntry {
	out := dataproduct.CatalogEntry{
		Name:      entry.GetName(),
		EntryType: entry.GetEntryType(),
	}
	if src := entry.GetEntrySource(); src != nil {
		source := &dataproduct.EntrySource{
			System:      src.GetSystem(),
			Resource:    src.GetResource(),
			DisplayName: src.GetDisplayName(),
			Labels:      src.GetLabels(),
		}
		if ts := src.GetCreateTime(); ts != nil {
			source.CreateTime = ts.AsTime()
		}
		out.Source = source
	}
	return out
}

func translateError(err error, resource string) error {
	switch status.Code(err) {
	case codes.PermissionDenied:
		return dataproduct.PermissionDeniedError{Resource: resource, Err: err}
	case codes.NotFound:
		return dataproduct.NotFoundError{Resource: resource, Err: err}
	}
	return err
}
