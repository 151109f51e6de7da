package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
	"github.com/pointsgame/admin-service/internal/services"
)

// GamesLister defines the interface that the service must implement.
type GamesLister interface {
	List(ctx context.Context, page, limit int) (*models.GamesPage, error)
}

// NewListGamesHandler returns an HTTP handler for the paginated admin games listing.
// @Summary List games
// @Description Returns finished game rounds, newest first, with pagination metadata. Each item carries the owning user's display name, or null when that user was deleted.
// @Tags admin
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Param limit query int false "Page size, defaults to 10"
// @Success 200 {object} models.Response "Games page"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Forbidden"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /admin/games [get]
// @Security BearerAuth
func NewListGamesHandler(svc GamesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Missing or non-numeric values fall back to the defaults rather
		// than producing an error.
		page := parseQueryInt(r, "page", services.DefaultPage)
		limit := parseQueryInt(r, "limit", services.DefaultLimit)

		result, err := svc.List(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("failed to list games", "error", err)
			writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		writeResponse(w, http.StatusOK, "Games retrieved successfully", result)
	}
}

func parseQueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
