package candidates

import (
	"context"
	"sort"
	"sync"

	"workwise-backend/internal/interviews"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[int64]Candidate // employerID -> id -> candidate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[int64]Candidate)}
}

// List returns the employer's candidates ordered by id.
func (r *MemoryRepo) List(ctx context.Context, employerID string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Candidate, 0, len(r.data[employerID]))
	for _, c := range r.data[employerID] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, employerID string, id int64) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.data[employerID][id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) Insert(ctx context.Context, employerID string, c Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[employerID] == nil {
		r.data[employerID] = make(map[int64]Candidate)
	}
	if _, ok := r.data[employerID][c.ID]; !ok {
		r.data[employerID][c.ID] = c
	}
	return nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, employerID string, id int64, status Status) (Candidate, error) {
	return r.mutate(ctx, employerID, id, func(c *Candidate) {
		c.Status = status
	})
}

func (r *MemoryRepo) AttachInterview(ctx context.Context, employerID string, id int64, iv interviews.Interview) (Candidate, error) {
	return r.mutate(ctx, employerID, id, func(c *Candidate) {
		c.Status = StatusInterview
		c.Interview = &iv
	})
}

// mutate applies fn to one row under the write lock.
func (r *MemoryRepo) mutate(ctx context.Context, employerID string, id int64, fn func(*Candidate)) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.data[employerID][id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	fn(&c)
	r.data[employerID][id] = c
	return c, nil
}

var _ Repo = (*MemoryRepo)(nil)
