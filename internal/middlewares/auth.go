package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/pointsgame/admin-service/internal/jwt"
	"github.com/pointsgame/admin-service/internal/logger"
	"github.com/pointsgame/admin-service/internal/models"
)

// Principal identifies the acting user for the duration of a request.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var principalKey = contextKey{}

// SetPrincipalToContext stores the acting principal in the context.
func SetPrincipalToContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the acting principal from the context.
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// injects the acting principal into the request context.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "error", err)
				writeStatus(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "error", err)
				writeStatus(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			isRevoked, err := revoked.IsRevoked(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("failed to check token revocation", "error", err)
				writeStatus(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if isRevoked {
				writeStatus(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx = SetPrincipalToContext(ctx, Principal{ID: claims.UserID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware lets only principals with the admin role through.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := GetPrincipalFromContext(r.Context())
			if !ok || p.Role != models.RoleAdmin {
				writeStatus(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeStatus(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.Response{
		StatusCode: code,
		Message:    message,
	})
}
