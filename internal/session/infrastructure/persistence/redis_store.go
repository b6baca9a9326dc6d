package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/vocalis/internal/session/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists request attributes in Redis. Keys are namespaced
// session:{session_id}:attr:{key} and expire after the configured TTL so
// abandoned sessions clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed attribute store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(sessionID, key string) string {
	return fmt.Sprintf("session:%s:attr:%s", sessionID, key)
}

// Set stores value under key for the session.
func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	return s.client.Set(ctx, s.key(sessionID, key), value, s.ttl).Err()
}

// Get retrieves the value for key.
func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(sessionID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrAttributeNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Delete removes the value for key.
func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, s.key(sessionID, key)).Err()
}

var _ domain.AttributeStore = (*RedisStore)(nil)
