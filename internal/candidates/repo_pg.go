package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"workwise-backend/internal/interviews"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, name, email, role, job_applied, experience, location, status, to_char(applied_date, 'YYYY-MM-DD'), percentage, interview`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var c Candidate
	var role, experience, location, percentage sql.NullString
	var interview []byte
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&role,
		&c.JobApplied,
		&experience,
		&location,
		&c.Status,
		&c.AppliedDate,
		&percentage,
		&interview,
	); err != nil {
		return Candidate{}, err
	}
	c.Role = role.String
	c.Experience = experience.String
	c.Location = location.String
	c.Percentage = percentage.String
	if len(interview) > 0 {
		var iv interviews.Interview
		if err := json.Unmarshal(interview, &iv); err != nil {
			return Candidate{}, fmt.Errorf("decode interview for candidate %d: %w", c.ID, err)
		}
		c.Interview = &iv
	}
	return c, nil
}

// List returns the employer's candidates ordered by id.
func (r *PGRepo) List(ctx context.Context, employerID string) ([]Candidate, error) {
	query := `
SELECT ` + selectColumns + `
FROM candidates
WHERE employer_id = $1
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, employerID string, id int64) (Candidate, error) {
	query := `
SELECT ` + selectColumns + `
FROM candidates
WHERE employer_id = $1 AND id = $2`
	c, err := scanCandidate(r.DB.QueryRowContext(ctx, query, employerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return c, nil
}

// Insert adds a candidate row unless one with the same id exists.
func (r *PGRepo) Insert(ctx context.Context, employerID string, c Candidate) error {
	const query = `
INSERT INTO candidates (
    employer_id,
    id,
    name,
    email,
    role,
    job_applied,
    experience,
    location,
    status,
    applied_date,
    percentage,
    interview,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
ON CONFLICT (employer_id, id) DO NOTHING`

	var interview any
	if c.Interview != nil {
		raw, err := json.Marshal(c.Interview)
		if err != nil {
			return fmt.Errorf("encode interview: %w", err)
		}
		interview = raw
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		employerID,
		c.ID,
		c.Name,
		c.Email,
		c.Role,
		c.JobApplied,
		c.Experience,
		c.Location,
		c.Status,
		c.AppliedDate,
		c.Percentage,
		interview,
	)
	return err
}

func (r *PGRepo) UpdateStatus(ctx context.Context, employerID string, id int64, status Status) (Candidate, error) {
	query := `
UPDATE candidates
SET status = $3, updated_at = now()
WHERE employer_id = $1 AND id = $2
RETURNING ` + selectColumns
	return r.updateRow(r.DB.QueryRowContext(ctx, query, employerID, id, status))
}

func (r *PGRepo) AttachInterview(ctx context.Context, employerID string, id int64, iv interviews.Interview) (Candidate, error) {
	raw, err := json.Marshal(iv)
	if err != nil {
		return Candidate{}, fmt.Errorf("encode interview: %w", err)
	}
	query := `
UPDATE candidates
SET interview = $3, status = $4, updated_at = now()
WHERE employer_id = $1 AND id = $2
RETURNING ` + selectColumns
	return r.updateRow(r.DB.QueryRowContext(ctx, query, employerID, id, raw, StatusInterview))
}

func (r *PGRepo) updateRow(row *sql.Row) (Candidate, error) {
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return c, nil
}

var _ Repo = (*PGRepo)(nil)
