package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON decodes the value at key into v. It returns ErrNotFound when
// the key is absent.
func LoadJSON(ctx context.Context, store Store, key string, v any) error {
	raw, err := store.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("kv: decode %s: %w", key, err)
	}
	return nil
}

// SaveJSON encodes v and stores it at key.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", key, err)
	}
	return store.Save(ctx, key, raw)
}
