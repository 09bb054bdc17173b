package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/velascoluis/data-roster/dataproduct"
	"github.com/velascoluis/data-roster/lineage"
	"github.com/velascoluis/data-roster/scan"
	"github.com/velascoluis/data-roster/warehouse"
)

type CatalogRepository struct {
	mock.Mock
}

func (repo *CatalogRepository) ListEntryGroups(ctx context.Context, parent string) ([]string, error) {
	args := repo.Called(ctx, parent)
	groups, _ := args.Get(0).([]string)
	return groups, args.Error(1)
}

func (repo *CatalogRepository) ListEntries(ctx context.Context, parent string) ([]dataproduct.CatalogEntry, error) {
	args := repo.Called(ctx, parent)
	entries, _ := args.Get(0).([]dataproduct.CatalogEntry)
	return entries, args.Error(1)
}

type ScanRepository struct {
	mock.Mock
}

func (repo *ScanRepository) ListScans(ctx context.Context, parent string) ([]scan.Scan, error) {
	args := repo.Called(ctx, parent)
	scans, _ := args.Get(0).([]scan.Scan)
	return scans, args.Error(1)
}

func (repo *ScanRepository) ListJobs(ctx context.Context, scanName string) ([]string, error) {
	args := repo.Called(ctx, scanName)
	jobs, _ := args.Get(0).([]string)
	return jobs, args.Error(1)
}

func (repo *ScanRepository) GetJob(ctx context.Context, jobName string) (scan.Job, error) {
	args := repo.Called(ctx, jobName)
	job, _ := args.Get(0).(scan.Job)
	return job, args.Error(1)
}

type LineageRepository struct {
	mock.Mock
}

func (repo *LineageRepository) SearchLinks(ctx context.Context, parent, target string) ([]lineage.Link, error) {
	args := repo.Called(ctx, parent, target)
	links, _ := args.Get(0).([]lineage.Link)
	return links, args.Error(1)
}

func (repo *LineageRepository) LinkProcesses(ctx context.Context, parent, linkName string) ([]string, error) {
	args := repo.Called(ctx, parent, linkName)
	processes, _ := args.Get(0).([]string)
	return processes, args.Error(1)
}

func (repo *LineageRepository) GetProcess(ctx context.Context, name string) (lineage.ProcessDetails, error) {
	args := repo.Called(ctx, name)
	details, _ := args.Get(0).(lineage.ProcessDetails)
	return details, args.Error(1)
}

type MetadataRepository struct {
	mock.Mock
}

func (repo *MetadataRepository) GetTable(ctx context.Context, tableFQN string) (*warehouse.TableSchema, error) {
	args := repo.Called(ctx, tableFQN)
	schema, _ := args.Get(0).(*warehouse.TableSchema)
	return schema, args.Error(1)
}

type TableFinder struct {
	mock.Mock
}

func (finder *TableFinder) FindTableEntry(ctx context.Context, projectID, location, tableID string) (*dataproduct.CatalogEntry, error) {
	args := finder.Called(ctx, projectID, location, tableID)
	entry, _ := args.Get(0).(*dataproduct.CatalogEntry)
	return entry, args.Error(1)
}

type DataProductService struct {
	mock.Mock
}

func (svc *DataProductService) ListDataProducts(ctx context.Context, projectID, location string) ([]dataproduct.DataProduct, error) {
	args := svc.Called(ctx, projectID, location)
	products, _ := args.Get(0).([]dataproduct.DataProduct)
	return products, args.Error(1)
}

type ProfileService struct {
	mock.Mock
}

func (svc *ProfileService) TableProfile(ctx context.Context, projectID, location, tableID string) (scan.TableReport, error) {
	args := svc.Called(ctx, projectID, location, tableID)
	report, _ := args.Get(0).(scan.TableReport)
	return report, args.Error(1)
}

type LineageService struct {
	mock.Mock
}

func (svc *LineageService) TableLineage(ctx context.Context, projectID, location, tableID string) (lineage.Graph, error) {
	args := svc.Called(ctx, projectID, location, tableID)
	graph, _ := args.Get(0).(lineage.Graph)
	return graph, args.Error(1)
}
