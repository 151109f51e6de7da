package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// The request body is decoded into models.UserUpdate, which has no password
// field: a credential submitted here is dropped before the service is called.
// @Summary Update user
// @Description Applies a partial update to a user account. Credential changes are not possible through this path.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param userUpdate body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.Response "Updated user"
// @Failure 400 {object} models.Response "Invalid body or duplicate email"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Forbidden"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /admin/users/{id} [patch]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			// An unparseable id cannot resolve to a user.
			writeResponse(w, http.StatusNotFound, "User not found", nil)
			return
		}

		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeResponse(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}

		user, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUserNotFound):
				writeResponse(w, http.StatusNotFound, "User not found", nil)
			case errors.Is(err, models.ErrEmailExists):
				writeResponse(w, http.StatusBadRequest, "Email already registered", nil)
			default:
				logger.Log.Errorw("failed to update user", "user_id", id, "error", err)
				writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeResponse(w, http.StatusOK, "User updated successfully", user)
	}
}
