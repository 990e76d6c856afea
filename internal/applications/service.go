package applications

import (
	"context"
	"strings"
	"time"

	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/telemetry"
)

// Service applies to jobs on behalf of a principal.
type Service struct {
	Registry *Registry
	// ApplyDelay stands in for the round trip of a real submission.
	ApplyDelay time.Duration
}

// Apply records an application for job. created is false when the job had
// already been applied to; that is not an error.
func (s *Service) Apply(ctx context.Context, principal string, job Job) (app JobApplication, created bool, err error) {
	if strings.TrimSpace(principal) == "" || job.ID <= 0 {
		return JobApplication{}, false, ErrInvalidInput
	}
	start := time.Now()
	defer func() {
		metrics.ObserveApplyLatencyMs(float64(time.Since(start).Milliseconds()))
	}()

	store := s.Registry.For(ctx, principal)
	if existing, ok := s.find(store, job.ID); ok {
		metrics.IncApplicationsDuplicate()
		return existing, false, nil
	}

	if err := wait(ctx, s.ApplyDelay); err != nil {
		return JobApplication{}, false, err
	}

	app, created = store.AddApplication(ctx, job)
	if created {
		metrics.IncApplicationsCreated()
		telemetry.Info("applications.added", map[string]any{
			"user_id": principal,
			"job_id":  job.ID,
			"id":      app.ID,
		})
	} else {
		metrics.IncApplicationsDuplicate()
	}
	return app, created, nil
}

// List returns the principal's applications in insertion order.
func (s *Service) List(ctx context.Context, principal string) []JobApplication {
	return s.Registry.For(ctx, principal).Applications()
}

// IsApplied reports whether the principal has applied to jobID.
func (s *Service) IsApplied(ctx context.Context, principal string, jobID int64) bool {
	return s.Registry.For(ctx, principal).IsJobApplied(jobID)
}

// ClaimGuest copies a guest's applications into principal's store. Jobs
// the principal already applied to keep the principal's record, so a
// repeated claim moves nothing.
func (s *Service) ClaimGuest(ctx context.Context, guestPrincipal, principal string) (int, error) {
	if strings.TrimSpace(guestPrincipal) == "" || strings.TrimSpace(principal) == "" {
		return 0, ErrInvalidInput
	}
	guest := s.Registry.For(ctx, guestPrincipal).Applications()
	return s.Registry.For(ctx, principal).Merge(ctx, guest), nil
}

func (s *Service) find(store *Store, jobID int64) (JobApplication, bool) {
	if !store.IsJobApplied(jobID) {
		return JobApplication{}, false
	}
	for _, app := range store.Applications() {
		if app.JobID == jobID {
			return app, true
		}
	}
	return JobApplication{}, false
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
