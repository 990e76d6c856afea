package accounts

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Account
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Account)}
}

func (r *MemoryRepo) Create(ctx context.Context, a Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Role == a.Role && existing.Email == a.Email {
			return ErrExists
		}
	}
	r.byID[a.ID] = cloneAccount(a)
	return nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, role Role, email string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.byID {
		if a.Role == role && a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return Account{}, ErrNotFound
}

func (r *MemoryRepo) GetByID(ctx context.Context, role Role, id string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok || a.Role != role {
		return Account{}, ErrNotFound
	}
	return cloneAccount(a), nil
}

func (r *MemoryRepo) Update(ctx context.Context, a Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range r.byID {
		if id != a.ID && existing.Role == a.Role && existing.Email == a.Email {
			return ErrExists
		}
	}
	r.byID[a.ID] = cloneAccount(a)
	return nil
}

func cloneAccount(a Account) Account {
	if a.Profile != nil {
		p := make(map[string]any, len(a.Profile))
		for k, v := range a.Profile {
			p[k] = v
		}
		a.Profile = p
	}
	return a
}

var _ Repo = (*MemoryRepo)(nil)
