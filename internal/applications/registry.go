package applications

import (
	"context"
	"sync"

	"workwise-backend/internal/shared/storage/kv"
)

// Registry lazily opens one Store per principal, each over its own
// namespace of the shared state store.
type Registry struct {
	mu     sync.Mutex
	base   kv.Store
	opts   Options
	stores map[string]*Store
}

func NewRegistry(base kv.Store, opts Options) *Registry {
	return &Registry{
		base:   base,
		opts:   opts,
		stores: make(map[string]*Store),
	}
}

// For returns the principal's store, opening it on first use.
func (r *Registry) For(ctx context.Context, principal string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[principal]; ok {
		return s
	}
	s := Open(ctx, kv.Namespace(r.base, principal), r.opts)
	r.stores[principal] = s
	return s
}
