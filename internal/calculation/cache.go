package calculation

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// ResultCache memoizes calculation results keyed by the canonical encoding
// of the input tuple. Implementations must treat failures as misses: a cache
// problem degrades to a recompute, never to a failed calculation.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.SavingsResult, bool)
	Set(ctx context.Context, key string, result *domain.SavingsResult)
}

// MemoryCache is the in-process default. Entries are stored serialized so a
// cached result is decoded fresh per hit and callers can never alias each
// other's copies.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*domain.SavingsResult, bool) {
	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	var result domain.SavingsResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *MemoryCache) Set(_ context.Context, key string, result *domain.SavingsResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

const redisKeyPrefix = "savingscalc:result:"

// RedisCache memoizes results in Redis with a TTL. Redis errors are logged
// and reported as misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewRedisCache wraps an existing Redis client. A nil logger means no-op.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger Logger) *RedisCache {
	if logger == nil {
		logger = NopLogger{}
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*domain.SavingsResult, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnf("result cache get failed: %v", err)
		}
		return nil, false
	}
	var result domain.SavingsResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warnf("result cache entry corrupt, ignoring: %v", err)
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result *domain.SavingsResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warnf("result cache marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warnf("result cache set failed: %v", err)
	}
}
