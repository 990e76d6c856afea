package interviews

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

// recorder captures the order of side effects.
type recorder struct {
	steps []string
	err   error
	sent  []Notification
}

func (r *recorder) Notify(ctx context.Context, n Notification) error {
	r.steps = append(r.steps, "notify")
	r.sent = append(r.sent, n)
	return r.err
}

type watchStore struct {
	kv.Store
	rec *recorder
}

func (w watchStore) Save(ctx context.Context, key string, value []byte) error {
	w.rec.steps = append(w.rec.steps, "persist")
	return w.Store.Save(ctx, key, value)
}

func newScheduler(rec *recorder, state kv.Store) *Scheduler {
	return &Scheduler{
		State:       state,
		Notifier:    rec,
		IDs:         &ids.Sequence{Prefix: "id-"},
		Now:         func() time.Time { return today },
		MeetingCode: func() string { return "abcdefgh" },
	}
}

func validRequest() Request {
	return Request{
		Candidate: Candidate{ID: "1", Name: "Priya Sharma", Email: "priya.sharma@example.com"},
		Company:   "Tech Corp India",
		Position:  "Senior Frontend Developer",
		Date:      "2030-03-20",
		Time:      "10:00 AM",
	}
}

func TestScheduleOrderAndDefaults(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	rec := &recorder{}
	s := newScheduler(rec, watchStore{Store: kv.NewMemoryStore(), rec: rec})

	var scheduled Interview
	iv, err := s.Schedule(context.Background(), "employer-1", validRequest(), Hooks{
		OnSchedule: func(iv Interview) {
			rec.steps = append(rec.steps, "onSchedule")
			scheduled = iv
		},
		OnClose: func() { rec.steps = append(rec.steps, "close") },
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if got := strings.Join(rec.steps, ","); got != "notify,persist,onSchedule,close" {
		t.Fatalf("unexpected side effect order %s", got)
	}
	if scheduled.ID != iv.ID {
		t.Fatalf("hook got a different interview")
	}
	if iv.Type != TypeRemote || iv.Duration != 60 || iv.Status != StatusScheduled {
		t.Fatalf("unexpected defaults %+v", iv)
	}
	if iv.MeetingLink != "https://meet.google.com/abcdefgh" || iv.Location != "" {
		t.Fatalf("unexpected link %q location %q", iv.MeetingLink, iv.Location)
	}
	want := Interviewer{ID: iv.Interviewer.ID, Name: "Hiring Manager", Position: "Technical Interviewer", Email: "tech.corp.india@example.com"}
	if iv.Interviewer != want || iv.Interviewer.ID == "" {
		t.Fatalf("unexpected interviewer %+v", iv.Interviewer)
	}
	if !iv.CreatedAt.Equal(today) {
		t.Fatalf("unexpected createdAt %v", iv.CreatedAt)
	}
	if rec.sent[0].To != "priya.sharma@example.com" || rec.sent[0].Subject != "Interview Scheduled" || rec.sent[0].Location != iv.MeetingLink {
		t.Fatalf("unexpected notification %+v", rec.sent[0])
	}

	list := s.Collection(context.Background(), "employer-1").List()
	if len(list) != 1 || list[0].ID != iv.ID {
		t.Fatalf("expected interview persisted, got %+v", list)
	}
}

func TestScheduleValidationFailureHasNoSideEffects(t *testing.T) {
	rec := &recorder{}
	s := newScheduler(rec, watchStore{Store: kv.NewMemoryStore(), rec: rec})

	req := validRequest()
	req.Time = ""
	called := false
	_, err := s.Schedule(context.Background(), "employer-1", req, Hooks{
		OnSchedule: func(Interview) { called = true },
		OnClose:    func() { called = true },
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called || len(rec.steps) != 0 {
		t.Fatalf("expected no side effects, got %v called=%v", rec.steps, called)
	}
	if got := s.Collection(context.Background(), "employer-1").List(); len(got) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(got))
	}
}

func TestScheduleNotifyFailureIsSwallowed(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	rec := &recorder{err: errors.New("smtp down")}
	s := newScheduler(rec, kv.NewMemoryStore())

	hooked := false
	if _, err := s.Schedule(context.Background(), "e", validRequest(), Hooks{OnSchedule: func(Interview) { hooked = true }}); err != nil {
		t.Fatalf("notify failure must not fail scheduling: %v", err)
	}
	if !hooked {
		t.Fatalf("expected OnSchedule after failed notify")
	}
	if len(s.Collection(context.Background(), "e").List()) != 1 {
		t.Fatalf("expected interview persisted")
	}
}

func TestScheduleIsNotIdempotent(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	s := newScheduler(&recorder{}, kv.NewMemoryStore())
	for i := 0; i < 2; i++ {
		if _, err := s.Schedule(context.Background(), "e", validRequest(), Hooks{}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}
	if got := len(s.Collection(context.Background(), "e").List()); got != 2 {
		t.Fatalf("expected two interviews, got %d", got)
	}
}

func TestScheduleOfflineKeepsLocation(t *testing.T) {
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	s := newScheduler(&recorder{}, kv.NewMemoryStore())
	req := validRequest()
	req.Type = TypeOffline
	req.Location = "Bangalore office, 4th floor"
	req.Candidate.ID = ""
	req.Interviewer = &Interviewer{ID: "7", Name: "Asha", Position: "EM", Email: "asha@example.com"}

	iv, err := s.Schedule(context.Background(), "e", req, Hooks{})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if iv.MeetingLink != "" || iv.Location != "Bangalore office, 4th floor" {
		t.Fatalf("unexpected link/location %q %q", iv.MeetingLink, iv.Location)
	}
	if iv.CandidateID == "" {
		t.Fatalf("expected generated candidate id")
	}
	if iv.Interviewer.Name != "Asha" {
		t.Fatalf("expected supplied interviewer, got %+v", iv.Interviewer)
	}
}
