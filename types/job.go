package types

import "time"

// JobStatus is the coarse state written back for one compose job.
type JobStatus string

const (
	StatusProcessing JobStatus = "processing"
	StatusSuccess    JobStatus = "success"
	StatusFailed     JobStatus = "failed"
)

// JobUpdate is the status payload handed to the status-reporting
// collaborator and stored for job lookups. OutputRef points at the
// persisted composed document when the job succeeded.
type JobUpdate struct {
	JobID     string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	OutputRef string    `json:"output_ref,omitempty"`
	Errors    []string  `json:"errors,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
