package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/auth"
	"workwise-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
	isGuestKey   = "isGuest"
)

var errNoToken = errors.New("no bearer token")

// Auth resolves the caller from a bearer token, falling back to an
// anonymous browser identity from X-Guest-Id. Requests with neither are
// rejected.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		claims, err := bearerClaims(c)
		switch {
		case err == nil:
			setIdentity(c, claims)
			c.Next()
			return
		case !errors.Is(err, errNoToken):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		c.Set(userIDKey, "guest:"+guestID)
		c.Set(isGuestKey, true)
		c.Next()
	}
}

// RequireBearer admits only requests carrying a valid bearer token: a
// missing token is 401, an invalid or expired one is 403.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c)
		if err != nil {
			if errors.Is(err, errNoToken) {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Access token required", nil)
				return
			}
			respond.Error(c, http.StatusForbidden, "forbidden", "Invalid or expired token", nil)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRole rejects callers whose token was not issued for role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRoleFromContext(c) != role {
			respond.Error(c, http.StatusForbidden, "forbidden", role+" account required", nil)
			return
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context) (auth.Claims, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return auth.Claims{}, errNoToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, errNoToken
	}
	return auth.VerifyJWT(token)
}

func setIdentity(c *gin.Context, claims auth.Claims) {
	c.Set(userIDKey, claims.ID)
	if claims.Email != "" {
		c.Set(userEmailKey, claims.Email)
	}
	if claims.Role != "" {
		c.Set(userRoleKey, claims.Role)
	}
	c.Set(isGuestKey, false)
}

// UserIDFromContext fetches the principal id set by Auth or RequireBearer.
func UserIDFromContext(c *gin.Context) string {
	return stringFromContext(c, userIDKey)
}

// UserEmailFromContext fetches the token email, if any.
func UserEmailFromContext(c *gin.Context) string {
	return stringFromContext(c, userEmailKey)
}

// UserRoleFromContext returns "candidate", "employer" or "" for guests.
func UserRoleFromContext(c *gin.Context) string {
	return stringFromContext(c, userRoleKey)
}

// IsGuest reports whether the caller was identified only by X-Guest-Id.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return false
	}
	return c.GetBool(isGuestKey)
}

func stringFromContext(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
