package geocode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores resolved venue addresses between restarts so the external
// lookup is not repeated for every boot. Misses and backend failures are
// indistinguishable on purpose: either way the resolver performs a lookup.
type Cache interface {
	Get(ctx context.Context, venueName string) (Address, bool)
	Set(ctx context.Context, venueName string, addr Address)
}

const (
	cacheKeyPrefix = "geocode:"
	cacheTTL       = 7 * 24 * time.Hour
)

// redisCache persists annotations in Redis with a TTL.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, venueName string) (Address, bool) {
	data, err := c.client.Get(ctx, cacheKeyPrefix+venueName).Bytes()
	if err != nil {
		return Address{}, false
	}
	var addr Address
	if err := json.Unmarshal(data, &addr); err != nil {
		return Address{}, false
	}
	return addr, true
}

func (c *redisCache) Set(ctx context.Context, venueName string, addr Address) {
	data, err := json.Marshal(addr)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKeyPrefix+venueName, data, cacheTTL).Err()
}

// memoryCache is the in-process fallback when no Redis is configured.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]Address
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string]Address)}
}

func (c *memoryCache) Get(_ context.Context, venueName string) (Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	addr, ok := c.entries[venueName]
	return addr, ok
}

func (c *memoryCache) Set(_ context.Context, venueName string, addr Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[venueName] = addr
}
