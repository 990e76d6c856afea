package accounts

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
	"workwise-backend/internal/shared/telemetry"
)

// GuestClaimer moves state recorded under an anonymous guest principal to
// a signed-in principal, returning how many records moved.
type GuestClaimer interface {
	ClaimGuest(ctx context.Context, guestPrincipal, principal string) (int, error)
}

// ClaimHandler lets a signed-in caller take over what they did as a guest.
type ClaimHandler struct {
	Claimer GuestClaimer
}

// RegisterRoutes attaches the claim route to a group behind Auth.
func (h *ClaimHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/account/claim-guest", h.claimGuest)
}

func (h *ClaimHandler) claimGuest(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	principal := strings.TrimSpace(middleware.UserIDFromContext(c))
	if principal == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}

	guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
	if guestID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing X-Guest-Id header", []map[string]string{
			{"field": "X-Guest-Id", "issue": "required"},
		})
		return
	}
	if _, err := uuid.Parse(guestID); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid guest id", []map[string]string{
			{"field": "X-Guest-Id", "issue": "invalid"},
		})
		return
	}

	n, err := h.Claimer.ClaimGuest(c.Request.Context(), "guest:"+guestID, principal)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to claim guest data", nil)
		return
	}
	telemetry.Info("accounts.guest_claimed", map[string]any{"user_id": principal, "migrated": n})
	respond.OK(c, gin.H{"migratedApplications": n})
}
