package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, phone, password_hash, role, points, bio, created_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email, or (nil, nil) when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, phone, password_hash, role, points, bio, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by creation time. The password_hash column
// is not selected, so the hash is never materialized for listings.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, phone, role, points, bio, created_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record. The email unique
// index is the source of truth for uniqueness: a violation surfaces as
// models.ErrEmailExists regardless of any advisory pre-check upstream.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, first_name, last_name, email, phone, password_hash, role, points, bio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING user_id, first_name, last_name, email, phone, password_hash, role, points, bio, created_at
	`
	args := []any{
		user.UserID, user.FirstName, user.LastName, user.Email,
		user.Phone, user.PasswordHash, user.Role, user.Points, user.Bio,
	}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Email},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, models.ErrEmailExists
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateByID applies a partial update and returns the updated record, or
// (nil, nil) when the id does not resolve. password_hash is not among the
// updatable columns; credential changes have their own flow.
func (r *UserWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.UserDB, error) {
	setClauses := make([]string, 0, 7)
	args := make([]any, 0, 8)
	argID := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}
	if upd.Points != nil {
		add("points", *upd.Points)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}

	if len(setClauses) == 0 {
		// Nothing to change; degrade to a read so the caller still gets
		// the current record or a not-found signal.
		setClauses = append(setClauses, "user_id = user_id")
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE user_id = $%d
		RETURNING user_id, first_name, last_name, email, phone, role, points, bio, created_at
	`, strings.Join(setClauses, ", "), argID)

	var updated models.UserDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, models.ErrEmailExists
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes the user and reports whether a row was deleted.
// Games referencing the user keep existing; their reference is set to NULL
// by the schema, so listings see a dangling owner, not an error.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
