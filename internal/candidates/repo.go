package candidates

import (
	"context"

	"workwise-backend/internal/interviews"
)

// Repo persists each employer's candidate table. Updates touch a single
// row atomically so concurrent writers never overwrite each other's
// columns.
type Repo interface {
	List(ctx context.Context, employerID string) ([]Candidate, error)
	Get(ctx context.Context, employerID string, id int64) (Candidate, error)
	// Insert adds a candidate. An existing row with the same id is kept.
	Insert(ctx context.Context, employerID string, c Candidate) error
	UpdateStatus(ctx context.Context, employerID string, id int64, status Status) (Candidate, error)
	// AttachInterview sets the interview and moves the row to Interview.
	AttachInterview(ctx context.Context, employerID string, id int64, iv interviews.Interview) (Candidate, error)
}
