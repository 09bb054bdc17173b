package dataplex

import (
	"context"
	"errors"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/api/iterator"

	"github.com/velascoluis/data-roster/scan"
)

// ScanRepository implements scan.Repository on top of the Dataplex data
// scan client.
type ScanRepository struct {
	client *dataplex.DataScanClient
}

var _ scan.Repository = (*ScanRepository)(nil)

func NewScanRepository(client *dataplex.DataScanClient) *ScanRepository {
	return &ScanRepository{client: client}
}

func (r *ScanRepository) ListScans(ctx context.Context, parent string) ([]scan.Scan, error) {
	it := r.client.ListDataScans(ctx, &dataplexpb.ListDataScansRequest{
		Parent: parent,
	})

	var scans []scan.Scan
	for {
		ds, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, parent)
		}
		scans = append(scans, scan.Scan{
			Name:     ds.GetName(),
			Resource: ds.GetData().GetResource(),
		})
	}
	return scans, nil
}

func (r *ScanRepository) ListJobs(ctx context.Context, scanName string) ([]string, error) {
	// resolve the scan first so the job listing runs against its canonical
	// name rather than whatever alias the caller held
	ds, err := r.client.GetDataScan(ctx, &dataplexpb.GetDataScanRequest{
		Name: scanName,
	})
	if err != nil {
		return nil, translateError(err, scanName)
	}

	it := r.client.ListDataScanJobs(ctx, &dataplexpb.ListDataScanJobsRequest{
		Parent: ds.GetName(),
	})

	var jobs []string
	for {
		job, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, scanName)
		}
		jobs = append(jobs, job.GetName())
	}
	return jobs, nil
}

func (r *ScanRepository) GetJob(ctx context.Context, jobName string) (scan.Job, error) {
	job, err := r.client.GetDataScanJob(ctx, &dataplexpb.GetDataScanJobRequest{
		Name: jobName,
		View: dataplexpb.GetDataScanJobRequest_FULL,
	})
	if err != nil {
		return scan.Job{}, translateError(err, jobName)
	}
	return toJob(job), nil
}

func toJob(pb *dataplexpb.DataScanJob) scan.Job {
	job := scan.Job{
		Name:  pb.GetName(),
		State: toJobState(pb.GetState()),
	}
	if quality := pb.GetDataQualityResult(); quality != nil {
		job.Quality = toQualityResult(quality)
	}
	if profile := pb.GetDataProfileResult(); profile != nil {
		job.Profile = toProfileResult(profile)
	}
	return job
}

func toJobState(state dataplexpb.DataScanJob_State) scan.JobState {
	switch state {
	case dataplexpb.DataScanJob_PENDING:
		return scan.StatePending
	case dataplexpb.DataScanJob_RUNNING:
		return scan.StateRunning
	case dataplexpb.DataScanJob_CANCELING:
		return scan.StateCanceling
	case dataplexpb.DataScanJob_CANCELLED:
		return scan.StateCancelled
	case dataplexpb.DataScanJob_SUCCEEDED:
		return scan.StateSucceeded
	case dataplexpb.DataScanJob_FAILED:
		return scan.StateFailed
	}
	return scan.StateUnspecified
}

func toQualityResult(pb *dataplexpb.DataQualityResult) *scan.QualityResult {
	result := &scan.QualityResult{}
	for _, dim := range pb.GetDimensions() {
		result.Dimensions = append(result.Dimensions, scan.DimensionResult{
			Name:   dim.GetDimension().GetName(),
			Score:  float64(dim.GetScore()),
			Passed: dim.GetPassed(),
		})
	}
	for _, rule := range pb.GetRules() {
		result.Rules = append(result.Rules, scan.RuleResult{
			Column:           rule.GetRule().GetColumn(),
			Dimension:        rule.GetRule().GetDimension(),
			Passed:           rule.GetPassed(),
			PassRatio:        rule.GetPassRatio(),
			PassedCount:      rule.GetPassedCount(),
			EvaluatedCount:   rule.GetEvaluatedCount(),
			FailingRowsQuery: rule.GetFailingRowsQuery(),
			Expectation:      toExpectation(rule.GetRule()),
		})
	}
	return result
}

func toExpectation(rule *dataplexpb.DataQualityRule) scan.Expectation {
	switch {
	case rule.GetNonNullExpectation() != nil:
		return scan.Expectation{Kind: scan.ExpectationNonNull}
	case rule.GetUniquenessExpectation() != nil:
		return scan.Expectation{Kind: scan.ExpectationUniqueness}
	case rule.GetSetExpectation() != nil:
		return scan.Expectation{
			Kind:   scan.ExpectationSet,
			Values: rule.GetSetExpectation().GetValues(),
		}
	case rule.GetRowConditionExpectation() != nil:
		return scan.Expectation{
			Kind:          scan.ExpectationRowCondition,
			SQLExpression: rule.GetRowConditionExpectation().GetSqlExpression(),
		}
	}
	return scan.Expectation{Kind: scan.ExpectationUnspecified}
}

func toProfileResult(pb *dataplexpb.DataProfileResult) *scan.ProfileResult {
	result := &scan.ProfileResult{
		RowCount: pb.GetRowCount(),
	}
	for _, field := range pb.GetProfile().GetFields() {
		out := scan.FieldResult{
			Name: field.GetName(),
			Type: field.GetType(),
			Mode: field.GetMode(),
		}
		if info := field.GetProfile(); info != nil {
			nonNull := 1 - info.GetNullRatio()
			distinct := info.GetDistinctRatio()
			profile := &scan.FieldProfileInfo{
				NonNullRatio:  &nonNull,
				DistinctRatio: &distinct,
			}
			for _, top := range info.GetTopNValues() {
				profile.TopNValues = append(profile.TopNValues, scan.TopNValue{
					Value: top.GetValue(),
					Count: top.GetCount(),
					Ratio: top.GetRatio(),
				})
			}
			if sp := info.GetStringProfile(); sp != nil {
				profile.StringProfile = &scan.StringProfile{
					MinLength:     sp.GetMinLength(),
					MaxLength:     sp.GetMaxLength(),
					AverageLength: sp.GetAverageLength(),
				}
			}
			out.Profile = profile
		}
		result.Fields = append(result.Fields, out)
	}
	return result
}
