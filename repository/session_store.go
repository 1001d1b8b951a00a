// file: repository/session_store.go

package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ISessionStore is a single-key TTL mapping backed by an external store.
// All operations are atomic per key; cross-key coordination is delegated to
// the store's TTL semantics.
type ISessionStore interface {
	// Get returns the stored value; the bool reports presence.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetIfAbsent stores the value only when the key does not exist and
	// reports whether the write happened.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// GetTTL returns the remaining lifetime; the bool reports presence.
	GetTTL(ctx context.Context, key string) (time.Duration, bool, error)
	Delete(ctx context.Context, key string) error
}

// RedisSessionStore implements ISessionStore on a Redis client.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisSessionStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, value, ttl).Result()
}

func (s *RedisSessionStore) GetTTL(ctx context.Context, key string) (time.Duration, bool, error) {
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, false, err
	}
	// go-redis reports -2ns for a missing key and -1ns for a key without expiry.
	if ttl == -2*time.Nanosecond {
		return 0, false, nil
	}
	if ttl == -1*time.Nanosecond {
		return 0, true, nil
	}
	return ttl, true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
