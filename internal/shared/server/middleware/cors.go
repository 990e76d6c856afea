package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured browser origins to call the API with
// credentials and answers preflight requests.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Guest-Id", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})
}
