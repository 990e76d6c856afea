package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/listing"
	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
)

// Handler serves the public board and the employer posting wizard.
type Handler struct {
	Board *Board
}

// NewHandler constructs a Handler.
func NewHandler(b *Board) *Handler {
	return &Handler{Board: b}
}

// RegisterRoutes attaches the board routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
}

// RegisterEmployerRoutes attaches the posting routes to an employer group.
func (h *Handler) RegisterEmployerRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/postings", h.post)
	rg.GET("/jobs/postings", h.postings)
}

func (h *Handler) list(c *gin.Context) {
	criteria := Criteria{
		Query:      c.Query("q"),
		Location:   c.Query("location"),
		Category:   c.Query("category"),
		JobType:    c.Query("jobType"),
		Salary:     c.Query("salaryRange"),
		DatePosted: c.Query("datePosted"),
	}
	items := Filter(Catalog(), criteria)
	// The board is public, so the client echoes its current sort back as
	// prevSort/prevDir and the column click toggles from there.
	prev := listing.SortState{Key: c.Query("prevSort"), Direction: listing.ParseDirection(c.Query("prevDir"), listing.Asc)}
	sort := listing.Resolve(prev, c.Query("sort"), c.Query("dir"))
	if sort.Key != "" {
		items = Sort(items, sort)
	}
	respond.OK(c, gin.H{"jobs": items, "total": len(items), "sort": sort})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.JobIDKey, id)
	for _, j := range Catalog() {
		if j.ID == id {
			respond.OK(c, j)
			return
		}
	}
	respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
}

func (h *Handler) post(c *gin.Context) {
	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p, err := h.Board.Post(c.Request.Context(), middleware.UserIDFromContext(c), draft)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Message, gin.H{"title": verr.Title})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to post job", nil)
		return
	}
	c.Set(middleware.JobIDKey, p.ID)
	respond.JSON(c, http.StatusCreated, p)
}

func (h *Handler) postings(c *gin.Context) {
	respond.OK(c, gin.H{"postings": h.Board.Postings(c.Request.Context(), middleware.UserIDFromContext(c))})
}
