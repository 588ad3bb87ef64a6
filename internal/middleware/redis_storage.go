package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage adapts a go-redis client to fiber's Storage interface so the
// rate limiter can share counters across replicas.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage wraps the given client.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Get returns the value for the key, or nil when the key does not exist.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	value, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, err
}

// Set stores the value with the given expiry; exp of zero means no expiry.
func (s *RedisStorage) Set(key string, value []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, value, exp).Err()
}

// Delete removes the key.
func (s *RedisStorage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Reset clears all keys in the current database.
func (s *RedisStorage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

// Close releases the underlying client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
