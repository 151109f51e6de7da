package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pointsgame/admin-service/internal/logger"
)

// TokenCacheRepository keeps revoked session tokens in Redis until their
// natural expiry. A token present in the cache must be rejected by the auth
// middleware even though its signature is still valid.
type TokenCacheRepository struct {
	client *redis.Client
}

func NewTokenCacheRepository(client *redis.Client) *TokenCacheRepository {
	return &TokenCacheRepository{client: client}
}

func revokedKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}

// Revoke marks a token as revoked for the given TTL.
func (r *TokenCacheRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	key := revokedKey(token)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token has been revoked.
func (r *TokenCacheRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := revokedKey(token)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return true, nil
}
