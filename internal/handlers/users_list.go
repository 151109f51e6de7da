package handlers

import (
	"context"
	"net/http"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// UsersLister defines the interface that the service must implement.
type UsersLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing all user accounts.
// The credential hash is excluded at the query level and has no field in the
// response type.
// @Summary List users
// @Description Returns all user accounts, credential hash always absent
// @Tags admin
// @Produce json
// @Success 200 {object} models.Response "Users"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Forbidden"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		writeResponse(w, http.StatusOK, "Users retrieved successfully", users)
	}
}
