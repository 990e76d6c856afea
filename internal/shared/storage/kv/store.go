// Package kv persists small JSON documents of client state under fixed keys
// such as "job-applications" and "workwise-interviews".
package kv

import (
	"context"
	"errors"
	"strings"

	"workwise-backend/internal/shared/util"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store loads and saves opaque values by key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Namespace scopes every key of store under ns. The namespace is hashed so
// principal ids never leak into file names or table rows.
func Namespace(store Store, ns string) Store {
	return &namespaced{inner: store, prefix: util.PrincipalKey(ns)}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Load(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Load(ctx, n.key(key))
}

func (n *namespaced) Save(ctx context.Context, key string, value []byte) error {
	return n.inner.Save(ctx, n.key(key), value)
}

func (n *namespaced) key(key string) string {
	return n.prefix + "/" + strings.TrimLeft(key, "/")
}
