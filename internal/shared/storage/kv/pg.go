package kv

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore keeps client state in the client_state table.
type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `
SELECT value
FROM client_state
WHERE key = $1
LIMIT 1`
	var value []byte
	if err := s.DB.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *PGStore) Save(ctx context.Context, key string, value []byte) error {
	const query = `
INSERT INTO client_state (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET
  value = EXCLUDED.value,
  updated_at = now()`
	_, err := s.DB.ExecContext(ctx, query, key, value)
	return err
}

var _ Store = (*PGStore)(nil)
