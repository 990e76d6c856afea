package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/respond"
	"workwise-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 with code "internal". The log
// line carries the route template and caller so the panic can be matched
// with its request.complete line.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
				"route":      c.FullPath(),
				"method":     c.Request.Method,
			}
			if userID := UserIDFromContext(c); userID != "" {
				fields["user_id"] = userID
			}
			telemetry.Error("http.panic", fields)
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
