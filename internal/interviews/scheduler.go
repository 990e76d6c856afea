package interviews

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"workwise-backend/internal/shared/ids"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/storage/kv"
	"workwise-backend/internal/shared/telemetry"
)

const meetingLinkBase = "https://meet.google.com/"

// Scheduler runs the scheduling workflow. Interviews are kept per
// scheduling principal.
type Scheduler struct {
	State    kv.Store
	Notifier Notifier
	IDs      ids.Generator
	Now      func() time.Time
	// MeetingCode generates the suffix of default meeting links.
	MeetingCode func() string

	mu          sync.Mutex
	collections map[string]*Collection
}

// Schedule validates req and, when valid, builds the interview, notifies
// the candidate, appends it to the principal's collection and then runs
// the hooks. A validation failure persists nothing and runs no hook.
// Scheduling the same slot twice yields two interviews.
func (s *Scheduler) Schedule(ctx context.Context, principal string, req Request, hooks Hooks) (Interview, error) {
	now := s.now()
	if err := Validate(req, now); err != nil {
		return Interview{}, err
	}

	iv := s.build(req, now)

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, NotificationFor(iv)); err != nil {
			metrics.IncNotificationsFailed()
			telemetry.Error("interviews.notify_failed", map[string]any{
				"interview_id": iv.ID,
				"candidate_id": iv.CandidateID,
				"error":        err.Error(),
			})
		}
	}

	s.Collection(ctx, principal).Append(ctx, iv)

	if hooks.OnSchedule != nil {
		hooks.OnSchedule(iv)
	}
	if hooks.OnClose != nil {
		hooks.OnClose()
	}

	metrics.IncInterviewsScheduled()
	telemetry.Info("interviews.scheduled", map[string]any{
		"user_id":      principal,
		"interview_id": iv.ID,
		"candidate_id": iv.CandidateID,
		"date":         iv.Date,
		"time":         iv.Time,
	})
	return iv, nil
}

// Collection returns the principal's interview collection.
func (s *Scheduler) Collection(ctx context.Context, principal string) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections == nil {
		s.collections = make(map[string]*Collection)
	}
	if c, ok := s.collections[principal]; ok {
		return c
	}
	c := OpenCollection(ctx, kv.Namespace(s.State, principal))
	s.collections[principal] = c
	return c
}

func (s *Scheduler) build(req Request, now time.Time) Interview {
	typ := req.Type
	if typ == "" {
		typ = TypeRemote
	}
	duration := req.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	candidateID := strings.TrimSpace(req.Candidate.ID)
	if candidateID == "" {
		candidateID = s.newID()
	}

	iv := Interview{
		ID:             s.newID(),
		CandidateID:    candidateID,
		CandidateName:  req.Candidate.Name,
		CandidateEmail: req.Candidate.Email,
		Company:        req.Company,
		Position:       req.Position,
		Type:           typ,
		Date:           strings.TrimSpace(req.Date),
		Time:           strings.TrimSpace(req.Time),
		Duration:       duration,
		Notes:          req.Notes,
		Status:         StatusScheduled,
		CreatedAt:      now.UTC(),
	}

	switch typ {
	case TypeRemote:
		iv.MeetingLink = strings.TrimSpace(req.MeetingLink)
		if iv.MeetingLink == "" {
			iv.MeetingLink = meetingLinkBase + s.meetingCode()
		}
	default:
		iv.Location = strings.TrimSpace(req.Location)
	}

	if req.Interviewer != nil {
		iv.Interviewer = *req.Interviewer
	} else {
		iv.Interviewer = DefaultInterviewer(s.newID(), req.Company)
	}
	return iv
}

// DefaultInterviewer is used when a request names no interviewer. The
// email is derived from the company name.
func DefaultInterviewer(id, company string) Interviewer {
	local := strings.Join(strings.Fields(strings.ToLower(company)), ".")
	return Interviewer{
		ID:       id,
		Name:     "Hiring Manager",
		Position: "Technical Interviewer",
		Email:    local + "@example.com",
	}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scheduler) newID() string {
	if s.IDs != nil {
		return s.IDs.NewID()
	}
	return uuid.NewString()
}

func (s *Scheduler) meetingCode() string {
	if s.MeetingCode != nil {
		return s.MeetingCode()
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
