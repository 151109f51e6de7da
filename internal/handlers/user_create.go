package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, in models.NewUser) (*models.User, error)
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	LastName string `json:"lastName"`

	// Email, unique across all accounts
	// required: true
	Email string `json:"email"`

	// Phone
	// required: true
	Phone string `json:"phone"`

	// Plaintext password, hashed before storage
	// required: true
	Password string `json:"password"`

	// Role, defaults to "user"
	Role string `json:"role"`
}

// NewCreateUserHandler returns an HTTP handler for the admin user creation path.
// @Summary Create user
// @Description Creates a user account. The password is hashed before storage and never returned.
// @Tags admin
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User fields"
// @Success 201 {object} models.Response "Created user, credential absent"
// @Failure 400 {object} models.Response "Missing fields or duplicate email"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 403 {object} models.Response "Forbidden"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /admin/users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}

		user, err := svc.Create(r.Context(), models.NewUser{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  req.Password,
			Role:      req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				writeResponse(w, http.StatusBadRequest, "Missing required fields", nil)
			case errors.Is(err, models.ErrEmailExists):
				writeResponse(w, http.StatusBadRequest, "Email already registered", nil)
			default:
				logger.Log.Errorw("failed to create user", "error", err)
				writeResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
			return
		}

		writeResponse(w, http.StatusCreated, "User created successfully", user)
	}
}
