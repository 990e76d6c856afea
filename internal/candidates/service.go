package candidates

import (
	"context"
	"errors"

	"workwise-backend/internal/interviews"
	"workwise-backend/internal/listing"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

// SortStateKey holds an employer's active table sort in the state store.
const SortStateKey = "candidates-sort"

// Service exposes an employer's candidate table.
type Service struct {
	Repo Repo
	// State remembers the active sort per employer. Nil keeps no state.
	State kv.Store
}

// List returns the filtered and sorted table. An employer with no rows is
// seeded with the sample applicants first.
func (s *Service) List(ctx context.Context, employerID string, c Criteria, sort listing.SortState) ([]Candidate, error) {
	items, err := s.all(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if sort.Key == "" {
		sort = DefaultSort
	}
	return Sort(Filter(items, c), sort), nil
}

// SelectSort applies a column click to the employer's saved sort and
// stores the result. An empty key returns the saved sort unchanged.
func (s *Service) SelectSort(ctx context.Context, employerID, key, rawDir string) (listing.SortState, error) {
	prev := DefaultSort
	if s.State == nil {
		return listing.Resolve(prev, key, rawDir), nil
	}
	store := kv.Namespace(s.State, employerID)
	if err := kv.LoadJSON(ctx, store, SortStateKey, &prev); err != nil && !errors.Is(err, kv.ErrNotFound) {
		return listing.SortState{}, err
	}
	next := listing.Resolve(prev, key, rawDir)
	if next == prev {
		return next, nil
	}
	if err := kv.SaveJSON(ctx, store, SortStateKey, next); err != nil {
		telemetry.Warn("candidates.sort_save_failed", map[string]any{
			"user_id": employerID,
			"error":   err.Error(),
		})
	}
	return next, nil
}

// Get returns one candidate.
func (s *Service) Get(ctx context.Context, employerID string, id int64) (Candidate, error) {
	if _, err := s.all(ctx, employerID); err != nil {
		return Candidate{}, err
	}
	return s.Repo.Get(ctx, employerID, id)
}

// UpdateStatus moves a candidate to status. Other columns, including an
// attached interview, are left as stored.
func (s *Service) UpdateStatus(ctx context.Context, employerID string, id int64, status Status) (Candidate, error) {
	if !status.Valid() {
		return Candidate{}, ErrInvalidStatus
	}
	if _, err := s.all(ctx, employerID); err != nil {
		return Candidate{}, err
	}
	c, err := s.Repo.UpdateStatus(ctx, employerID, id, status)
	if err != nil {
		return Candidate{}, err
	}
	telemetry.Info("candidates.status_changed", map[string]any{
		"user_id":      employerID,
		"candidate_id": id,
		"status":       string(status),
	})
	return c, nil
}

// AttachInterview records a scheduled interview on the candidate and moves
// them to the Interview status.
func (s *Service) AttachInterview(ctx context.Context, employerID string, id int64, iv interviews.Interview) (Candidate, error) {
	if _, err := s.all(ctx, employerID); err != nil {
		return Candidate{}, err
	}
	return s.Repo.AttachInterview(ctx, employerID, id, iv)
}

func (s *Service) all(ctx context.Context, employerID string) ([]Candidate, error) {
	items, err := s.Repo.List(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	for _, c := range Seed() {
		if err := s.Repo.Insert(ctx, employerID, c); err != nil {
			return nil, err
		}
	}
	return s.Repo.List(ctx, employerID)
}
