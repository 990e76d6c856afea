package applications

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:jobId", h.status)
}

type applyRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id is required", nil)
		return
	}
	c.Set(middleware.JobIDKey, req.ID)

	app, created, err := h.Svc.Apply(c.Request.Context(), middleware.UserIDFromContext(c), Job{
		ID:      req.ID,
		Title:   strings.TrimSpace(req.Title),
		Company: strings.TrimSpace(req.Company),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "canceled", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to apply", nil)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respond.JSON(c, status, gin.H{
		"application":    app,
		"alreadyApplied": !created,
	})
}

func (h *Handler) list(c *gin.Context) {
	apps := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c))
	respond.OK(c, gin.H{"applications": apps})
}

func (h *Handler) status(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job id", nil)
		return
	}
	c.Set(middleware.JobIDKey, jobID)
	respond.OK(c, gin.H{
		"jobId":   jobID,
		"applied": h.Svc.IsApplied(c.Request.Context(), middleware.UserIDFromContext(c), jobID),
	})
}
