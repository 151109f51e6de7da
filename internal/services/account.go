package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// bcryptCost is the work factor applied whenever a plaintext credential is
// hashed. Hashing happens here, before any persist: the write contract of the
// account store, not a storage-layer hook.
const bcryptCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	UpdateByID(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.UserDB, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AccountService owns the user entity: validation, uniqueness, credential
// hashing and verification, and the admin-facing CRUD contract.
type AccountService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *AccountService {
	return &AccountService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a user lifecycle event to Kafka. Best-effort: a
// publish failure is logged and never fails the request that caused it.
func (svc *AccountService) publishEvent(ctx context.Context, eventType string, userID uuid.UUID, email string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", userID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Email:     email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event", "type", eventType, "user_id", userID, "error", err)
	} else {
		logger.Log.Infow("user event published", "type", eventType, "user_id", userID)
	}
}

// Create validates the input, hashes the credential and persists a new user.
// The stored record never contains the plaintext. The email unique index
// makes the duplicate check race-safe; the read here is advisory.
func (svc *AccountService) Create(ctx context.Context, in models.NewUser) (*models.User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, models.ErrMissingFields
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "email", in.Email, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	saved, err := svc.writer.Save(ctx, models.UserDB{
		UserID:       uuid.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Points:       0,
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", in.Email, "error", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.EventUserCreated, saved.UserID, saved.Email)

	user := saved.ToUser()
	return &user, nil
}

// GetByID returns a single user without the credential hash.
func (svc *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if record == nil {
		return nil, models.ErrUserNotFound
	}
	user := record.ToUser()
	return &user, nil
}

// List returns all users. The hash is excluded at the query level by the
// read repository, so it is never even materialized here.
func (svc *AccountService) List(ctx context.Context) ([]models.User, error) {
	records, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	users := make([]models.User, 0, len(records))
	for i := range records {
		users = append(users, records[i].ToUser())
	}
	return users, nil
}

// Update applies a partial update. The update type carries no credential
// field, so a password submitted through this path is dropped before it
// gets anywhere near the store.
func (svc *AccountService) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	updated, err := svc.writer.UpdateByID(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, models.ErrUserNotFound
	}

	svc.publishEvent(ctx, models.EventUserUpdated, updated.UserID, updated.Email)

	user := updated.ToUser()
	return &user, nil
}

// Delete removes the target account. An admin may not delete their own
// account through this path; that check runs before any store call.
func (svc *AccountService) Delete(ctx context.Context, actingID, targetID uuid.UUID) error {
	if actingID == targetID {
		return models.ErrSelfDelete
	}

	target, err := svc.reader.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get user before delete", "user_id", targetID, "error", err)
		return err
	}
	if target == nil {
		return models.ErrUserNotFound
	}

	deleted, err := svc.writer.DeleteByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", targetID, "error", err)
		return err
	}
	if !deleted {
		return models.ErrUserNotFound
	}

	svc.publishEvent(ctx, models.EventUserDeleted, targetID, target.Email)
	return nil
}

// VerifyCredential reports whether the candidate plaintext matches the
// stored hash. The comparison is delegated to bcrypt and gives away nothing
// about where a mismatch occurred.
func (svc *AccountService) VerifyCredential(user *models.UserDB, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
