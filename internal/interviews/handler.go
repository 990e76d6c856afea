package interviews

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
	"workwise-backend/internal/shared/telemetry"
)

// ErrCandidateNotFound is returned by a Directory for unknown candidates.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateProfile is what scheduling needs to know about a candidate.
type CandidateProfile struct {
	Candidate
	JobApplied string
}

// Directory looks up an employer's candidates and records scheduled
// interviews on them.
type Directory interface {
	Lookup(ctx context.Context, owner, candidateID string) (CandidateProfile, error)
	AttachInterview(ctx context.Context, owner, candidateID string, iv Interview) error
}

// Handler wires HTTP handlers to the scheduler.
type Handler struct {
	Scheduler *Scheduler
	Directory Directory
}

// NewHandler constructs a Handler.
func NewHandler(s *Scheduler, dir Directory) *Handler {
	return &Handler{Scheduler: s, Directory: dir}
}

// RegisterRoutes attaches interview routes to an employer router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates/:id/interviews", h.schedule)
	rg.GET("/interviews", h.list)
	rg.GET("/interviews/slots", h.slots)
	rg.PATCH("/interviews/:id/status", h.updateStatus)
}

type scheduleRequest struct {
	Company     string       `json:"company"`
	Position    string       `json:"position"`
	Type        Type         `json:"type"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Duration    int          `json:"duration"`
	MeetingLink string       `json:"meetingLink"`
	Location    string       `json:"location"`
	Notes       string       `json:"notes"`
	Interviewer *Interviewer `json:"interviewer"`
}

func (h *Handler) schedule(c *gin.Context) {
	owner := middleware.UserIDFromContext(c)
	candidateID := c.Param("id")
	c.Set(middleware.CandidateIDKey, candidateID)

	var body scheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := c.Request.Context()
	profile, err := h.Directory.Lookup(ctx, owner, candidateID)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load candidate", nil)
		return
	}

	position := strings.TrimSpace(body.Position)
	if position == "" {
		position = profile.JobApplied
	}
	company := strings.TrimSpace(body.Company)
	if company == "" {
		company = "WorkWise"
	}

	req := Request{
		Candidate:   profile.Candidate,
		Company:     company,
		Position:    position,
		Type:        body.Type,
		Date:        body.Date,
		Time:        body.Time,
		Duration:    body.Duration,
		MeetingLink: body.MeetingLink,
		Location:    body.Location,
		Notes:       body.Notes,
		Interviewer: body.Interviewer,
	}

	iv, err := h.Scheduler.Schedule(ctx, owner, req, Hooks{
		OnSchedule: func(iv Interview) {
			if err := h.Directory.AttachInterview(ctx, owner, candidateID, iv); err != nil {
				telemetry.Error("interviews.attach_failed", map[string]any{
					"interview_id": iv.ID,
					"candidate_id": candidateID,
					"error":        err.Error(),
				})
			}
		},
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Message, gin.H{"field": verr.Field, "title": verr.Title})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to schedule interview", nil)
		return
	}

	c.Set(middleware.InterviewIDKey, iv.ID)
	respond.JSON(c, http.StatusCreated, iv)
}

func (h *Handler) list(c *gin.Context) {
	items := h.Scheduler.Collection(c.Request.Context(), middleware.UserIDFromContext(c)).List()
	respond.OK(c, gin.H{"interviews": items})
}

func (h *Handler) slots(c *gin.Context) {
	respond.OK(c, gin.H{"slots": TimeSlots(), "durations": Durations})
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.InterviewIDKey, id)

	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.StatusTransitionKey, string(body.Status))

	col := h.Scheduler.Collection(c.Request.Context(), middleware.UserIDFromContext(c))
	iv, err := col.UpdateStatus(c.Request.Context(), id, body.Status)
	switch {
	case err == nil:
		respond.OK(c, iv)
	case errors.Is(err, ErrInvalidStatus):
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be Scheduled, Completed or Cancelled", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to update interview", nil)
	}
}
