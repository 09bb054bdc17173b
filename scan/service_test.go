package scan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/odpf/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/lib/mocks"
	"github.com/velascoluis/data-roster/scan"
	"github.com/velascoluis/data-roster/warehouse"
)

func tableEntry() *dataproduct.CatalogEntry {
	return &dataproduct.CatalogEntry{
		Name: "entries/bigquery.googleapis.com/projects/my-project/datasets/sales/tables/orders",
		Source: &dataproduct.EntrySource{
			System:   "BIGQUERY",
			Resource: "//bigquery.googleapis.com/projects/my-project/datasets/sales/tables/orders",
		},
	}
}

func succeededJob(name string) scan.Job {
	return scan.Job{
		Name:  name,
		State: scan.StateSucceeded,
		Quality: &scan.QualityResult{
			Rules: []scan.RuleResult{
				{Column: "order_id", Expectation: scan.Expectation{Kind: scan.ExpectationNonNull}},
			},
		},
		Profile: &scan.ProfileResult{RowCount: 100},
	}
}

func TestServiceTableProfile(t *testing.T) {
	ctx := context.Background()
	parent := "projects/my-project/locations/us-central1"
	resource := "//bigquery.googleapis.com/projects/my-project/datasets/sales/tables/orders"
	scanName := parent + "/dataScans/orders-scan"

	newService := func(repo *mocks.ScanRepository, finder *mocks.TableFinder, metadata *mocks.MetadataRepository, config scan.Config) *scan.Service {
		return scan.NewService(log.NewNoop(), config, repo, finder, metadata)
	}

	t.Run("should flatten results of every succeeded job", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").Return(tableEntry(), nil)

		metadata := new(mocks.MetadataRepository)
		schema := &warehouse.TableSchema{Fields: []warehouse.Column{{Name: "order_id", Type: "STRING"}}}
		metadata.On("GetTable", ctx, "my-project.sales.orders").Return(schema, nil)

		repo := new(mocks.ScanRepository)
		repo.On("ListScans", ctx, parent).Return([]scan.Scan{{Name: scanName, Resource: resource}}, nil)
		repo.On("ListJobs", ctx, scanName).Return([]string{scanName + "/jobs/2", scanName + "/jobs/1"}, nil)
		repo.On("GetJob", ctx, scanName+"/jobs/2").Return(succeededJob("2"), nil)
		repo.On("GetJob", ctx, scanName+"/jobs/1").Return(succeededJob("1"), nil)

		svc := newService(repo, finder, metadata, scan.Config{})
		report, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		require.NoError(t, err)
		assert.Equal(t, schema, report.Schema)
		assert.Len(t, report.Quality, 2)
		assert.Len(t, report.Profiles, 2)
		repo.AssertExpectations(t)
	})

	t.Run("should keep only the most recent succeeded job when configured", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").Return(tableEntry(), nil)

		metadata := new(mocks.MetadataRepository)
		metadata.On("GetTable", ctx, "my-project.sales.orders").Return(nil, nil)

		repo := new(mocks.ScanRepository)
		repo.On("ListScans", ctx, parent).Return([]scan.Scan{{Name: scanName, Resource: resource}}, nil)
		repo.On("ListJobs", ctx, scanName).Return([]string{scanName + "/jobs/2", scanName + "/jobs/1"}, nil)
		repo.On("GetJob", ctx, scanName+"/jobs/2").Return(succeededJob("2"), nil)

		svc := newService(repo, finder, metadata, scan.Config{LatestOnly: true})
		report, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		require.NoError(t, err)
		assert.Len(t, report.Quality, 1)
		assert.Len(t, report.Profiles, 1)
		repo.AssertNotCalled(t, "GetJob", ctx, scanName+"/jobs/1")
	})

	t.Run("should skip jobs that did not succeed", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").Return(tableEntry(), nil)

		metadata := new(mocks.MetadataRepository)
		metadata.On("GetTable", ctx, "my-project.sales.orders").Return(nil, nil)

		repo := new(mocks.ScanRepository)
		repo.On("ListScans", ctx, parent).Return([]scan.Scan{{Name: scanName, Resource: resource}}, nil)
		repo.On("ListJobs", ctx, scanName).Return([]string{scanName + "/jobs/2", scanName + "/jobs/1"}, nil)
		repo.On("GetJob", ctx, scanName+"/jobs/2").Return(scan.Job{State: scan.StateRunning}, nil)
		repo.On("GetJob", ctx, scanName+"/jobs/1").Return(scan.Job{State: scan.StateFailed}, nil)

		svc := newService(repo, finder, metadata, scan.Config{})
		report, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		require.NoError(t, err)
		assert.Empty(t, report.Quality)
		assert.Empty(t, report.Profiles)
	})

	t.Run("should return an empty report when the table has no catalog entry", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").Return(nil, nil)

		svc := newService(new(mocks.ScanRepository), finder, new(mocks.MetadataRepository), scan.Config{})
		report, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		require.NoError(t, err)
		assert.Equal(t, []scan.FormattedQuality{}, report.Quality)
		assert.Equal(t, []scan.FormattedProfile{}, report.Profiles)
		assert.Nil(t, report.Schema)
	})

	t.Run("should still answer when the schema lookup fails", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").Return(tableEntry(), nil)

		metadata := new(mocks.MetadataRepository)
		metadata.On("GetTable", ctx, "my-project.sales.orders").Return(nil, errors.New("bigquery unavailable"))

		repo := new(mocks.ScanRepository)
		repo.On("ListScans", ctx, parent).Return([]scan.Scan{{Name: scanName, Resource: resource}}, nil)
		repo.On("ListJobs", ctx, scanName).Return([]string{scanName + "/jobs/1"}, nil)
		repo.On("GetJob", ctx, scanName+"/jobs/1").Return(succeededJob("1"), nil)

		svc := newService(repo, finder, metadata, scan.Config{})
		report, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		require.NoError(t, err)
		assert.Nil(t, report.Schema)
		assert.Len(t, report.Quality, 1)
	})

	t.Run("should propagate a failing entry lookup", func(t *testing.T) {
		finder := new(mocks.TableFinder)
		finder.On("FindTableEntry", ctx, "my-project", "us-central1", "orders").
			Return(nil, dataproduct.PermissionDeniedError{Resource: "entryGroups/@bigquery", Err: errors.New("denied")})

		svc := newService(new(mocks.ScanRepository), finder, new(mocks.MetadataRepository), scan.Config{})
		_, err := svc.TableProfile(ctx, "my-project", "us-central1", "orders")

		assert.ErrorAs(t, err, new(dataproduct.PermissionDeniedError))
	})
}
