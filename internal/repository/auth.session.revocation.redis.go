package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRevocationPrefix = "withdraw-review:revoked"

// AuthSessionRevocationRedisRepository is a deny-list of signed-out
// sessions keyed by token id. Entries expire with the token.
type AuthSessionRevocationRedisRepository struct {
	client *redis.Client
	prefix string
}

func NewAuthSessionRevocationRedisRepository(client *redis.Client) *AuthSessionRevocationRedisRepository {
	return &AuthSessionRevocationRedisRepository{client: client, prefix: defaultRevocationPrefix}
}

func (r *AuthSessionRevocationRedisRepository) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

func (r *AuthSessionRevocationRedisRepository) RevokeSession(ctx context.Context, sessionID string, until time.Time) error {
	if sessionID == "" {
		return errors.New("repository: session id is required")
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, r.key(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("repository: failed to revoke session: %w", err)
	}

	return nil
}

func (r *AuthSessionRevocationRedisRepository) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	count, err := r.client.Exists(ctx, r.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("repository: failed to check session revocation: %w", err)
	}

	return count > 0, nil
}
