package candidates

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"workwise-backend/internal/interviews"
)

var pgColumns = []string{"id", "name", "email", "role", "job_applied", "experience", "location", "status", "applied_date", "percentage", "interview"}

func TestPGRepoListDecodesInterview(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows(pgColumns).
		AddRow(1, "Priya Sharma", "priya.sharma@example.com", "Senior Frontend Developer", "Senior Frontend Developer", "5 years", "Bangalore, India", "Interview", "2023-04-12", "80", []byte(`{"id":"iv-1","date":"2030-03-20","type":"remote"}`)).
		AddRow(2, "Rahul Kumar", "rahul.kumar@example.com", nil, "Product Manager", nil, nil, "New", "2023-04-15", nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE employer_id = \\$1").
		WithArgs("employer-1").
		WillReturnRows(rows)

	items, err := (&PGRepo{DB: db}).List(context.Background(), "employer-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].Interview == nil || items[0].Interview.Type != interviews.TypeRemote {
		t.Fatalf("interview not decoded: %+v", items[0].Interview)
	}
	if items[1].Interview != nil || items[1].Role != "" {
		t.Fatalf("unexpected null handling: %+v", items[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs("employer-1", int64(9)).
		WillReturnRows(sqlmock.NewRows(pgColumns))

	if _, err := (&PGRepo{DB: db}).Get(context.Background(), "employer-1", 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoInsertKeepsExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	c := Seed()[0]
	mock.ExpectExec("INSERT INTO candidates (.+) ON CONFLICT \\(employer_id, id\\) DO NOTHING").
		WithArgs("employer-1", c.ID, c.Name, c.Email, c.Role, c.JobApplied, c.Experience, c.Location, c.Status, c.AppliedDate, c.Percentage, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (&PGRepo{DB: db}).Insert(context.Background(), "employer-1", c); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusTouchesOnlyStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows(pgColumns).
		AddRow(1, "Priya Sharma", "priya.sharma@example.com", "Senior Frontend Developer", "Senior Frontend Developer", "5 years", "Bangalore, India", "Reviewed", "2023-04-12", "80", []byte(`{"id":"iv-1","date":"2030-03-20","type":"remote"}`))
	mock.ExpectQuery("UPDATE candidates\\s+SET status = \\$3, updated_at = now\\(\\)\\s+WHERE employer_id = \\$1 AND id = \\$2\\s+RETURNING").
		WithArgs("employer-1", int64(1), StatusReviewed).
		WillReturnRows(rows)

	c, err := (&PGRepo{DB: db}).UpdateStatus(context.Background(), "employer-1", 1, StatusReviewed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if c.Status != StatusReviewed || c.Interview == nil || c.Interview.ID != "iv-1" {
		t.Fatalf("expected status change to keep interview, got %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAttachInterview(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows(pgColumns).
		AddRow(2, "Rahul Kumar", "rahul.kumar@example.com", nil, "Product Manager", nil, nil, "Interview", "2023-04-15", nil, []byte(`{"id":"iv-9","date":"2030-03-21","type":"offline"}`))
	mock.ExpectQuery("UPDATE candidates\\s+SET interview = \\$3, status = \\$4").
		WithArgs("employer-1", int64(2), sqlmock.AnyArg(), StatusInterview).
		WillReturnRows(rows)

	iv := interviews.Interview{ID: "iv-9", Date: "2030-03-21", Type: interviews.TypeOffline}
	c, err := (&PGRepo{DB: db}).AttachInterview(context.Background(), "employer-1", 2, iv)
	if err != nil {
		t.Fatalf("AttachInterview: %v", err)
	}
	if c.Status != StatusInterview || c.Interview == nil || c.Interview.ID != "iv-9" {
		t.Fatalf("unexpected candidate %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("UPDATE candidates").
		WithArgs("employer-1", int64(9), StatusHired).
		WillReturnRows(sqlmock.NewRows(pgColumns))

	if _, err := (&PGRepo{DB: db}).UpdateStatus(context.Background(), "employer-1", 9, StatusHired); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
