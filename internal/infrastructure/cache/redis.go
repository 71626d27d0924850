package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodpulse/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a redis-backed CacheRepository. Values are stored as JSON
// strings, matching the memory backend's decoded shapes.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis and verifies the connection
func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves and decodes a value
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var value interface{}
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value as JSON with TTL
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Delete removes a key
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Exists checks whether a key is present
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the underlying connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}
