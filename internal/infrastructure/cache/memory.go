package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/foodpulse/backend/internal/domain"
)

// entry is a single cached value with its expiration
type entry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support. Values are
// stored as JSON so Get returns the same decoded shapes as the redis
// backend; callers see no difference between the two.
type MemoryCache struct {
	data  map[string]entry
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache and starts a background
// sweep that drops expired entries every 10 minutes.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]entry),
	}

	go c.sweepExpired(10 * time.Minute)

	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.RLock()
	e, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || time.Now().After(e.expiresAt) {
		return nil, domain.ErrCacheMiss
	}

	var value interface{}
	if err := json.Unmarshal(e.payload, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, exists := c.data[key]
	if !exists || time.Now().After(e.expiresAt) {
		return false, nil
	}
	return true, nil
}

// sweepExpired removes expired entries periodically
func (c *MemoryCache) sweepExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]entry)
}
