package lineage

import "context"

const (
	// fqnPrefix qualifies warehouse table names in lineage entity
	// references, e.g. "bigquery:project.dataset.table".
	fqnPrefix = "bigquery:"

	// jobIDAttribute is the process attribute carrying the warehouse job
	// that produced the link.
	jobIDAttribute = "bigquery_job_id"

	startTimeAttribute = "start_time"
	endTimeAttribute   = "end_time"
)

// Link is one directed lineage edge. Source and Target are fully
// qualified entity names including the system prefix.
type Link struct {
	Name   string
	Source string
	Target string
}

// ProcessDetails is the raw process record behind a link.
type ProcessDetails struct {
	DisplayName string
	Attributes  map[string]string
}

// Process is the simplified process record surfaced to the UI. Start and
// end times appear only when the upstream attributes carry them.
type Process struct {
	ID        string `json:"id"`
	SQL       string `json:"sql"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// Graph is the inbound lineage of one table: the originating tables and
// the processes that produced them.
type Graph struct {
	Sources   []string  `json:"sources"`
	Processes []Process `json:"processes"`
}

// Repository is the read boundary to the lineage service.
type Repository interface {
	// SearchLinks returns every link whose target matches the given fully
	// qualified entity name.
	SearchLinks(ctx context.Context, parent, target string) ([]Link, error)
	// LinkProcesses resolves one link to the names of the processes that
	// created it.
	LinkProcesses(ctx context.Context, parent, linkName string) ([]string, error)
	// GetProcess fetches the details of one process.
	GetProcess(ctx context.Context, name string) (ProcessDetails, error)
}
