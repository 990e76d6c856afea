package applications

import (
	"context"
	"errors"
	"sync"
	"time"

	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

// StorageKey is where the application set is persisted.
const StorageKey = "job-applications"

type document struct {
	Applications []JobApplication `json:"applications"`
}

// Options configures a Store. Zero values fall back to UUID ids and the
// wall clock.
type Options struct {
	IDs ids.Generator
	Now func() time.Time
}

// Store is the single source of truth for which jobs a user has applied
// to. It holds at most one application per job id.
type Store struct {
	mu      sync.RWMutex
	kv      kv.Store
	ids     ids.Generator
	now     func() time.Time
	apps    []JobApplication
	applied map[int64]int
}

// Open builds a Store and rehydrates it from persisted state. Missing or
// unreadable state yields an empty store.
func Open(ctx context.Context, store kv.Store, opts Options) *Store {
	if opts.IDs == nil {
		opts.IDs = ids.UUID{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		kv:      store,
		ids:     opts.IDs,
		now:     opts.Now,
		applied: make(map[int64]int),
	}

	var doc document
	err := kv.LoadJSON(ctx, store, StorageKey, &doc)
	switch {
	case err == nil:
		for _, app := range doc.Applications {
			// Keep the first record if persisted state ever held duplicates.
			if _, dup := s.applied[app.JobID]; dup {
				continue
			}
			s.applied[app.JobID] = len(s.apps)
			s.apps = append(s.apps, app)
		}
	case errors.Is(err, kv.ErrNotFound):
	default:
		telemetry.Warn("applications.rehydrate_failed", map[string]any{"error": err.Error()})
	}
	return s
}

// AddApplication records an application for job. If the job was already
// applied to it returns the existing record and false without changing
// anything.
func (s *Store) AddApplication(ctx context.Context, job Job) (JobApplication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.applied[job.ID]; ok {
		return s.apps[idx], false
	}

	app := JobApplication{
		ID:        s.ids.NewID(),
		JobID:     job.ID,
		JobTitle:  job.Title,
		Company:   job.Company,
		AppliedAt: s.now().UTC(),
		Status:    StatusPending,
	}
	s.applied[job.ID] = len(s.apps)
	s.apps = append(s.apps, app)
	s.persistLocked(ctx)
	return app, true
}

// Merge adds the records whose job has not been applied to yet, keeping
// their ids and timestamps, and returns how many were added.
func (s *Store) Merge(ctx context.Context, apps []JobApplication) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, app := range apps {
		if _, ok := s.applied[app.JobID]; ok {
			continue
		}
		s.applied[app.JobID] = len(s.apps)
		s.apps = append(s.apps, app)
		added++
	}
	if added > 0 {
		s.persistLocked(ctx)
	}
	return added
}

// IsJobApplied reports whether an application exists for jobID.
func (s *Store) IsJobApplied(jobID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.applied[jobID]
	return ok
}

// Applications returns all applications in insertion order.
func (s *Store) Applications() []JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]JobApplication, len(s.apps))
	copy(out, s.apps)
	return out
}

// persistLocked writes the full collection. Failures leave the in-memory
// state authoritative for the rest of the process.
func (s *Store) persistLocked(ctx context.Context) {
	if err := kv.SaveJSON(ctx, s.kv, StorageKey, document{Applications: s.apps}); err != nil {
		metrics.IncPersistFailed()
		telemetry.Error("applications.persist_failed", map[string]any{
			"count": len(s.apps),
			"error": err.Error(),
		})
	}
}
