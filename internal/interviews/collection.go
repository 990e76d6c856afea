package interviews

import (
	"context"
	"errors"
	"sync"

	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

// StorageKey is where the interview list is persisted.
const StorageKey = "workwise-interviews"

// Collection is the durable, append-only list of scheduled interviews.
// Writes are serialized and each one persists the whole list.
type Collection struct {
	mu    sync.RWMutex
	kv    kv.Store
	items []Interview
}

// OpenCollection rehydrates the collection; missing or unreadable state
// starts it empty.
func OpenCollection(ctx context.Context, store kv.Store) *Collection {
	c := &Collection{kv: store}
	var items []Interview
	err := kv.LoadJSON(ctx, store, StorageKey, &items)
	switch {
	case err == nil:
		c.items = items
	case errors.Is(err, kv.ErrNotFound):
	default:
		telemetry.Warn("interviews.rehydrate_failed", map[string]any{"error": err.Error()})
	}
	return c
}

// Append adds iv. Persistence failures are logged and swallowed.
func (c *Collection) Append(ctx context.Context, iv Interview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, iv)
	c.persistLocked(ctx)
}

// List returns the interviews in scheduling order.
func (c *Collection) List() []Interview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Interview, len(c.items))
	copy(out, c.items)
	return out
}

// UpdateStatus moves an interview to status.
func (c *Collection) UpdateStatus(ctx context.Context, id string, status Status) (Interview, error) {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
	default:
		return Interview{}, ErrInvalidStatus
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Status = status
			c.persistLocked(ctx)
			return c.items[i], nil
		}
	}
	return Interview{}, ErrNotFound
}

func (c *Collection) persistLocked(ctx context.Context) {
	if err := kv.SaveJSON(ctx, c.kv, StorageKey, c.items); err != nil {
		metrics.IncPersistFailed()
		telemetry.Error("interviews.persist_failed", map[string]any{
			"count": len(c.items),
			"error": err.Error(),
		})
	}
}
