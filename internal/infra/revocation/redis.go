package revocation

import (
	"context"
	"time"

	"languagebot/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// RedisStore keeps revoked session IDs in Redis with a TTL matching the token's remaining lifetime,
// so revocations are shared across replicas and survive restarts.
type RedisStore struct {
	client redis.Cmdable
}

var _ repository.SessionRevocationRepository = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Revoke implements repository.SessionRevocationRepository.
func (s *RedisStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedKeyPrefix+sessionID, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "redis revoke session")
	}

	return nil
}

// IsRevoked implements repository.SessionRevocationRepository.
func (s *RedisStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+sessionID).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis check session revocation")
	}

	return n > 0, nil
}
