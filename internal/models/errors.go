package models

import "errors"

// Domain errors shared by repositories, services and handlers. Handlers
// classify them inline with errors.Is; anything else is a 500.
var (
	// ErrMissingFields is returned when a required field is absent or empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailExists is returned when a write would violate email uniqueness.
	ErrEmailExists = errors.New("email already registered")
	// ErrUserNotFound is returned when an id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfDelete is returned when an admin targets their own account.
	ErrSelfDelete = errors.New("cannot delete own account")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
