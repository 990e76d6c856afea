package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/accounts"
	"workwise-backend/internal/applications"
	"workwise-backend/internal/candidates"
	"workwise-backend/internal/interviews"
	"workwise-backend/internal/jobs"
	"workwise-backend/internal/screening"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/metrics"
	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted by NewRouter. Nil handlers are
// skipped.
type RouterDeps struct {
	Config             config.Config
	AccountHandler     *accounts.Handler
	GoogleAuth         *accounts.GoogleService
	ClaimHandler       *accounts.ClaimHandler
	ApplicationHandler *applications.Handler
	ScreeningHandler   *screening.Handler
	JobHandler         *jobs.Handler
	CandidateHandler   *candidates.Handler
	InterviewHandler   *interviews.Handler
	RateLimiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	public := r.Group("/api")
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(public)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(public)
	}

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
			Limiter: deps.RateLimiter,
		}),
	)
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(api)
	}
	if deps.ScreeningHandler != nil {
		deps.ScreeningHandler.RegisterRoutes(api)
	}
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(api)
	}
	if deps.ClaimHandler != nil {
		deps.ClaimHandler.RegisterRoutes(api)
	}

	employer := api.Group("")
	employer.Use(middleware.RequireRole(string(accounts.RoleEmployer)))
	if deps.CandidateHandler != nil {
		deps.CandidateHandler.RegisterRoutes(employer)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(employer)
	}
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterEmployerRoutes(employer)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
