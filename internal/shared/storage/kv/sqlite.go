package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps client state in an embedded SQLite database.
type SQLiteStore struct {
	DB *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("kv sqlite: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS client_state (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kv sqlite: init schema: %w", err)
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO client_state (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}

var _ Store = (*SQLiteStore)(nil)
