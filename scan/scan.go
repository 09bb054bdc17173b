package scan

import "context"

// JobState is the lifecycle state of one scan job. Only succeeded jobs
// contribute to flattened results; every other state is silently skipped.
type JobState string

const (
	StateUnspecified JobState = "STATE_UNSPECIFIED"
	StatePending     JobState = "PENDING"
	StateRunning     JobState = "RUNNING"
	StateCanceling   JobState = "CANCELING"
	StateCancelled   JobState = "CANCELLED"
	StateSucceeded   JobState = "SUCCEEDED"
	StateFailed      JobState = "FAILED"
)

// Scan is one data scan definition, bound to exactly one warehouse
// resource URI.
type Scan struct {
	Name     string
	Resource string
}

// Job is one run of a scan, in full view. Quality and Profile are nil when
// the run did not produce the corresponding result.
type Job struct {
	Name    string
	State   JobState
	Quality *QualityResult
	Profile *ProfileResult
}

// QualityResult is the nested quality payload as the scan service returns
// it.
type QualityResult struct {
	Dimensions []DimensionResult
	Rules      []RuleResult
}

type DimensionResult struct {
	Name   string
	Score  float64
	Passed bool
}

type RuleResult struct {
	Column           string
	Dimension        string
	Passed           bool
	PassRatio        float64
	PassedCount      int64
	EvaluatedCount   int64
	FailingRowsQuery string
	Expectation      Expectation
}

// ExpectationKind discriminates the rule expectation variants. Upstream
// encodes them as a union; exactly one variant applies per rule.
type ExpectationKind int

const (
	ExpectationUnspecified ExpectationKind = iota
	ExpectationNonNull
	ExpectationUniqueness
	ExpectationSet
	ExpectationRowCondition
)

// Expectation is the tagged form of a rule's expectation. Values is set
// for ExpectationSet, SQLExpression for ExpectationRowCondition.
type Expectation struct {
	Kind          ExpectationKind
	Values        []string
	SQLExpression string
}

// ProfileResult is the nested statistical profile payload. Optional ratios
// are pointers so absence is distinguishable from a genuine zero.
type ProfileResult struct {
	RowCount int64
	Fields   []FieldResult
}

type FieldResult struct {
	Name    string
	Type    string
	Mode    string
	Profile *FieldProfileInfo
}

type FieldProfileInfo struct {
	NonNullRatio  *float64
	DistinctRatio *float64
	TopNValues    []TopNValue
	StringProfile *StringProfile
}

type TopNValue struct {
	Value string
	Count int64
	Ratio float64
}

type StringProfile struct {
	MinLength     int64
	MaxLength     int64
	AverageLength float64
}

// Repository is the read boundary to the scan service.
type Repository interface {
	// ListScans returns every scan definition under
	// "projects/{project}/locations/{location}".
	ListScans(ctx context.Context, parent string) ([]Scan, error)
	// ListJobs returns the job names of one scan, most recent first.
	ListJobs(ctx context.Context, scanName string) ([]string, error)
	// GetJob fetches one job in full view, results included.
	GetJob(ctx context.Context, jobName string) (Job, error)
}
