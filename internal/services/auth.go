package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// AccountCreator creates accounts; registration delegates to the account
// store so the two creation paths share one write contract.
type AccountCreator interface {
	Create(ctx context.Context, in models.NewUser) (*models.User, error)
}

// CredentialVerifier checks a candidate plaintext against a stored hash.
type CredentialVerifier interface {
	VerifyCredential(user *models.UserDB, candidate string) bool
}

// JWTGenerator defines an interface for generating principal tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// TokenRevoker marks issued tokens as revoked until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	accounts AccountCreator
	verifier CredentialVerifier
	jwt      JWTGenerator
	tokens   TokenRevoker
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	reader UserReader,
	accounts AccountCreator,
	verifier CredentialVerifier,
	jwt JWTGenerator,
	tokens TokenRevoker,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		reader:   reader,
		accounts: accounts,
		verifier: verifier,
		jwt:      jwt,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Register creates a regular account. The role is forced to "user": admin
// accounts are only created through the admin path.
func (svc *AuthService) Register(ctx context.Context, in models.NewUser) (*models.User, error) {
	in.Role = models.RoleUser
	return svc.accounts.Create(ctx, in)
}

// Login authenticates by email and returns a signed token carrying the
// user's id and role. A missing account and a wrong password produce the
// same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user for login", "error", err)
		return "", err
	}
	if user == nil {
		return "", models.ErrInvalidCredentials
	}

	if !svc.verifier.VerifyCredential(user, password) {
		return "", models.ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.UserID, "error", err)
		return "", err
	}
	return token, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if err := svc.tokens.Revoke(ctx, token, svc.tokenTTL); err != nil {
		logger.Log.Errorw("failed to revoke token", "error", err)
		return err
	}
	return nil
}
