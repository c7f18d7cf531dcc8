package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned on a cache miss.
var ErrNotFound = errors.New("key not found in cache")

// RedisCache wraps a redis client with the cache operations the services use.
// It is optional: callers hold a nil *RedisCache when caching is disabled.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis cache instance and verifies the connection.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get retrieves a raw value from cache.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	if r == nil {
		return "", ErrNotFound
	}
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a raw value in cache with the default expiration.
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	if r == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// SetJSON stores a JSON-encoded value in cache.
func (r *RedisCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if r == nil {
		return nil
	}
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, jsonData)
}

// GetJSON retrieves and decodes a JSON value from cache.
func (r *RedisCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes keys from cache. Missing keys are not an error.
func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if r == nil || len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// Close closes the Redis connection.
func (r *RedisCache) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}

// OfferingKey is the cache key for a course offering with its time slots.
func OfferingKey(id int64) string {
	return fmt.Sprintf("retakereg:offering:%d", id)
}

// WindowKey is the cache key for the registration window of a term.
func WindowKey(term string) string {
	return fmt.Sprintf("retakereg:window:%s", term)
}
