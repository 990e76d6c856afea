package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/telemetry"
)

// Context keys handlers set so the request log carries domain ids.
const (
	JobIDKey            = "jobId"
	CandidateIDKey      = "candidateId"
	InterviewIDKey      = "interviewId"
	StatusTransitionKey = "statusTransition"
)

// Logging emits one structured log line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    IsGuest(c),
			"client_ip":   c.ClientIP(),
		}
		if role := UserRoleFromContext(c); role != "" {
			fields["role"] = role
		}
		for _, key := range []string{JobIDKey, CandidateIDKey, InterviewIDKey, StatusTransitionKey} {
			if val, ok := c.Get(key); ok {
				fields[toSnake(key)] = val
			}
		}
		telemetry.Info("request.complete", fields)
	}
}

func toSnake(key string) string {
	switch key {
	case JobIDKey:
		return "job_id"
	case CandidateIDKey:
		return "candidate_id"
	case InterviewIDKey:
		return "interview_id"
	case StatusTransitionKey:
		return "status_transition"
	default:
		return key
	}
}
