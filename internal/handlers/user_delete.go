package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/middlewares"
	"github.com/pointsgame/admin-service/internal/models"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, actingID, targetID uuid.UUID) error
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user account.
// The acting identity comes from the auth middleware; deleting one's own
// account through this path is rejected before any store call.
// @Summary Delete user
// @Description Physically removes a user account. Self-deletion is rejected.
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.Response "Deleted"
// @Failure 400 {object} models.Response "Self-delete attempt"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Forbidden"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /admin/users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := middlewares.GetPrincipalFromContext(r.Context())
		if !ok {
			writeResponse(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		targetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeResponse(w, http.StatusNotFound, "User not found", nil)
			return
		}

		if err := svc.Delete(r.Context(), principal.ID, targetID); err != nil {
			switch {
			case errors.Is(err, models.ErrSelfDelete):
				writeResponse(w, http.StatusBadRequest, "Cannot delete own account", nil)
			case errors.Is(err, models.ErrUserNotFound):
				writeResponse(w, http.StatusNotFound, "User not found", nil)
			default:
				logger.Log.Errorw("failed to delete user", "user_id", targetID, "error", err)
				writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeResponse(w, http.StatusOK, "User deleted successfully", nil)
	}
}
