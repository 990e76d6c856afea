package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const uniqueViolation = "23505"

func (r *PGRepo) Create(ctx context.Context, a Account) error {
	const query = `
INSERT INTO accounts (id, role, email, password_hash, profile, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	profile, err := encodeProfile(a.Profile)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		a.ID,
		a.Role,
		a.Email,
		nullableString(a.PasswordHash),
		profile,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapUnique(err)
}

func (r *PGRepo) GetByEmail(ctx context.Context, role Role, email string) (Account, error) {
	const query = `
SELECT id, role, email, password_hash, profile, created_at, updated_at
FROM accounts
WHERE role = $1 AND email = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, role, email))
}

func (r *PGRepo) GetByID(ctx context.Context, role Role, id string) (Account, error) {
	const query = `
SELECT id, role, email, password_hash, profile, created_at, updated_at
FROM accounts
WHERE role = $1 AND id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, role, id))
}

func (r *PGRepo) Update(ctx context.Context, a Account) error {
	const query = `
UPDATE accounts
SET email = $1, password_hash = $2, profile = $3, updated_at = $4
WHERE id = $5 AND role = $6`
	profile, err := encodeProfile(a.Profile)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		a.Email,
		nullableString(a.PasswordHash),
		profile,
		a.UpdatedAt,
		a.ID,
		a.Role,
	)
	if err != nil {
		return mapUnique(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (Account, error) {
	var a Account
	var hash sql.NullString
	var profile []byte
	err := row.Scan(&a.ID, &a.Role, &a.Email, &hash, &profile, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	a.PasswordHash = hash.String
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &a.Profile); err != nil {
			return Account{}, err
		}
		if len(a.Profile) == 0 {
			a.Profile = nil
		}
	}
	return a, nil
}

func encodeProfile(p map[string]any) ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

func mapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrExists
	}
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
