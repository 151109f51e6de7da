package handlers

import (
	"context"
	"net/http"

	"github.com/pointsgame/admin-service/internal/logger"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutTokener extracts the bearer token from the request.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Logout
// @Description Revokes the presented bearer token until its natural expiry
// @Tags auth
// @Produce json
// @Success 200 {object} models.Response "Token revoked"
// @Failure 401 {object} models.Response "Missing or malformed token"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeResponse(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		if err := svc.Logout(ctx, token); err != nil {
			logger.Log.Errorw("failed to logout", "error", err)
			writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		writeResponse(w, http.StatusOK, "Logged out successfully", nil)
	}
}
