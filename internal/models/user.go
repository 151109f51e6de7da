package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values stored in the users table.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"-" db:"user_id"`            // Primary key
	FirstName    string    `json:"firstName" db:"first_name"` // Required
	LastName     string    `json:"lastName" db:"last_name"`   // Required
	Email        string    `json:"email" db:"email"`          // Unique, login key
	Phone        string    `json:"phone" db:"phone"`          // Required
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`            // "user" or "admin"
	Points       int       `json:"points" db:"points"`        // Points balance
	Bio          *string   `json:"bio,omitempty" db:"bio"`    // Optional free text
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Set once on insert
}

// User is the API shape of a user. The credential hash has no field here, so
// it can never appear in a response body.
type User struct {
	ID        uuid.UUID `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Points    int       `json:"points"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUser maps a database record to its API shape.
func (u *UserDB) ToUser() User {
	return User{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Points:    u.Points,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

// NewUser carries the fields required to create an account. Password is the
// plaintext credential; it is hashed before it ever reaches a repository.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      string
}

// UserUpdate is a partial update. Nil fields are left untouched. There is no
// password field: credential changes do not go through this path.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Points    *int    `json:"points"`
	Bio       *string `json:"bio"`
}

// Empty reports whether the update touches no columns.
func (u *UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Phone == nil && u.Role == nil && u.Points == nil && u.Bio == nil
}
