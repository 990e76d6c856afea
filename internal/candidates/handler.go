package candidates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the candidate service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches candidate routes to an employer router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidates", h.list)
	rg.GET("/candidates/:id", h.get)
	rg.PATCH("/candidates/:id/status", h.updateStatus)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Query:      c.Query("q"),
		Experience: c.Query("experience"),
		Status:     c.Query("status"),
		Location:   c.Query("location"),
		Role:       c.Query("role"),
		Percentage: c.Query("percentage"),
	}
	ctx := c.Request.Context()
	employerID := middleware.UserIDFromContext(c)
	sort, err := h.Svc.SelectSort(ctx, employerID, c.Query("sort"), c.Query("dir"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load sort", nil)
		return
	}

	items, err := h.Svc.List(ctx, employerID, criteria, sort)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list candidates", nil)
		return
	}
	respond.OK(c, gin.H{"candidates": items, "sort": sort})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}
	cand, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, cand)
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}
	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.StatusTransitionKey, string(body.Status))

	cand, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.UserIDFromContext(c), id, body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, cand)
}

func candidateID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	c.Set(middleware.CandidateIDKey, raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "candidate id must be numeric", nil)
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
	case errors.Is(err, ErrInvalidStatus):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown candidate status", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to update candidate", nil)
	}
}
