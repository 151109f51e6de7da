package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginData carries the issued token.
type LoginData struct {
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary User login
// @Description Authenticates by email and returns a bearer token carrying the user's id and role
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.Response "Token issued"
// @Failure 400 {object} models.Response "Invalid request body"
// @Failure 401 {object} models.Response "Invalid email or password"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				writeResponse(w, http.StatusUnauthorized, "Invalid email or password", nil)
			default:
				logger.Log.Errorw("failed to login", "error", err)
				writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeResponse(w, http.StatusOK, "Login successful", LoginData{Token: token})
	}
}
