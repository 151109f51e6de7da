package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.NewUser) (*models.User, error)
}

// RegisterRequest represents the JSON body for self-registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	LastName string `json:"lastName"`

	// Email
	// required: true
	Email string `json:"email"`

	// Phone
	// required: true
	Phone string `json:"phone"`

	// Password
	// required: true
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for self-registration.
// Registered accounts always get the "user" role.
// @Summary Register a new user
// @Description Creates a regular account. Ensures a unique email. The password is hashed before storage.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} models.Response "User registered"
// @Failure 400 {object} models.Response "Missing fields or duplicate email"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}

		user, err := svc.Register(r.Context(), models.NewUser{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				writeResponse(w, http.StatusBadRequest, "Missing required fields", nil)
			case errors.Is(err, models.ErrEmailExists):
				writeResponse(w, http.StatusBadRequest, "Email already registered", nil)
			default:
				logger.Log.Errorw("failed to register user", "error", err)
				writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeResponse(w, http.StatusCreated, "User registered successfully", user)
	}
}
