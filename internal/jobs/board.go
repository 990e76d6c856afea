package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

// PostingsKey is where an employer's postings are persisted.
const PostingsKey = "workwise-job-listings"

// Board keeps each employer's published postings.
type Board struct {
	State kv.Store
	IDs   ids.Generator
	Now   func() time.Time

	mu       sync.Mutex
	postings map[string]*postings
}

type postings struct {
	mu    sync.Mutex
	kv    kv.Store
	items []Posting
}

// Post validates the draft and publishes it. Title, department and
// location are required.
func (b *Board) Post(ctx context.Context, employer string, d Draft) (Posting, error) {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Department) == "" || strings.TrimSpace(d.Location) == "" {
		return Posting{}, &ValidationError{Title: "Missing Information", Message: "Please fill in all required fields."}
	}

	jobType := strings.TrimSpace(d.JobType)
	if jobType == "" {
		jobType = DefaultJobType
	}
	p := Posting{
		ID:             b.newID(),
		Title:          strings.TrimSpace(d.Title),
		Department:     strings.TrimSpace(d.Department),
		CompanyName:    d.CompanyName,
		Location:       strings.TrimSpace(d.Location),
		JobType:        jobType,
		SalaryRange:    d.SalaryRange,
		Description:    d.Description,
		Requirements:   splitLines(d.Requirements),
		Qualifications: splitLines(d.Qualifications),
		Applicants:     0,
		Status:         PostingActive,
		PostedDate:     b.now().UTC(),
	}

	col := b.open(ctx, employer)
	col.mu.Lock()
	col.items = append(col.items, p)
	if err := kv.SaveJSON(ctx, col.kv, PostingsKey, col.items); err != nil {
		metrics.IncPersistFailed()
		telemetry.Error("jobs.persist_failed", map[string]any{
			"user_id": employer,
			"error":   err.Error(),
		})
	}
	col.mu.Unlock()

	telemetry.Info("jobs.posted", map[string]any{
		"user_id": employer,
		"job_id":  p.ID,
		"title":   p.Title,
	})
	return p, nil
}

// Postings lists the employer's postings in publish order.
func (b *Board) Postings(ctx context.Context, employer string) []Posting {
	col := b.open(ctx, employer)
	col.mu.Lock()
	defer col.mu.Unlock()
	out := make([]Posting, len(col.items))
	copy(out, col.items)
	return out
}

func (b *Board) open(ctx context.Context, employer string) *postings {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.postings == nil {
		b.postings = make(map[string]*postings)
	}
	if p, ok := b.postings[employer]; ok {
		return p
	}
	p := &postings{kv: kv.Namespace(b.State, employer)}
	if err := kv.LoadJSON(ctx, p.kv, PostingsKey, &p.items); err != nil && !errors.Is(err, kv.ErrNotFound) {
		p.items = nil
		telemetry.Warn("jobs.rehydrate_failed", map[string]any{"user_id": employer, "error": err.Error()})
	}
	b.postings[employer] = p
	return p
}

func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func (b *Board) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Board) newID() string {
	if b.IDs != nil {
		return b.IDs.NewID()
	}
	return uuid.NewString()
}
