package accounts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
)

// Handler serves the auth API for both account collections.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts /<role>/signup, /<role>/login and
// /<role>/account-settings for every role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	for _, role := range Roles {
		g := rg.Group("/" + string(role))
		g.POST("/signup", h.signup(role))
		g.POST("/login", h.login(role))
		g.PUT("/account-settings", middleware.RequireBearer(), h.updateSettings(role))
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		email, _ := body["email"].(string)
		password, _ := body["password"].(string)
		delete(body, "email")
		delete(body, "password")
		if len(body) == 0 {
			body = nil
		}

		a, err := h.Svc.Signup(c.Request.Context(), role, email, password, body)
		if err != nil {
			switch {
			case errors.Is(err, ErrExists):
				respond.Error(c, http.StatusBadRequest, "already_exists", "User already exists. Please log in.", nil)
			case errors.Is(err, ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal", "failed to create account", nil)
			}
			return
		}
		respond.JSON(c, http.StatusCreated, gin.H{"message": "Signup successful.", "id": a.ID})
	}
}

func (h *Handler) login(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body credentials
		if err := c.ShouldBindJSON(&body); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		token, a, err := h.Svc.Login(c.Request.Context(), role, body.Email, body.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "User doesn't exist. Please sign up first.", nil)
			case errors.Is(err, ErrInvalidCredentials):
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials.", nil)
			case errors.Is(err, ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal", "failed to log in", nil)
			}
			return
		}
		respond.OK(c, gin.H{"token": token, "user": a.User()})
	}
}

func (h *Handler) updateSettings(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.UserRoleFromContext(c) != string(role) {
			respond.Error(c, http.StatusForbidden, "forbidden", "token was not issued for this account type", nil)
			return
		}
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}

		_, err := h.Svc.UpdateSettings(c.Request.Context(), role, strings.TrimSpace(middleware.UserIDFromContext(c)), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "account not found", nil)
			case errors.Is(err, ErrExists):
				respond.Error(c, http.StatusBadRequest, "already_exists", "email already in use", nil)
			case errors.Is(err, ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal", "failed to update account", nil)
			}
			return
		}
		respond.Message(c, http.StatusOK, "Account updated.")
	}
}
