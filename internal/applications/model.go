package applications

import "time"

// Status is the review state of an application. New applications are
// pending; only an external review process moves them on.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// JobApplication records that the current user applied to a job. JobTitle
// and Company are copies taken at apply time and are never refreshed.
type JobApplication struct {
	ID        string    `json:"id"`
	JobID     int64     `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	AppliedAt time.Time `json:"appliedAt"`
	Status    Status    `json:"status"`
}

// Job is the part of a job listing an application needs.
type Job struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}
