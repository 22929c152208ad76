package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketwise/savings-calculator/internal/domain"
)

func sampleResult() *domain.SavingsResult {
	return &domain.SavingsResult{
		ID:           "sample",
		GeneratedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Industry:     "restaurant",
		BusinessSize: "medium",
		Savings:      domain.Savings{Monthly: dec(300), Yearly: dec(3600)},
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "key", sampleResult())
	got, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "sample", got.ID)
	assert.True(t, got.Savings.Monthly.Equal(dec(300)))
	assert.Equal(t, 1, cache.Len())
}

// Each hit decodes a fresh copy; mutating one must not leak into the next.
func TestMemoryCacheReturnsIndependentCopies(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", sampleResult())

	first, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	first.Industry = "mutated"

	second, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "restaurant", second.Industry)
}

func newRedisCacheForTest(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Hour, nil), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, mr := newRedisCacheForTest(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "key", sampleResult())
	assert.True(t, mr.Exists(redisKeyPrefix+"key"))

	got, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "sample", got.ID)
	assert.Equal(t, "restaurant", got.Industry)
}

func TestRedisCacheHonorsTTL(t *testing.T) {
	cache, mr := newRedisCacheForTest(t)
	ctx := context.Background()

	cache.Set(ctx, "key", sampleResult())
	mr.FastForward(2 * time.Hour)

	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestRedisCacheDegradesToMissOnServerFailure(t *testing.T) {
	cache, mr := newRedisCacheForTest(t)
	ctx := context.Background()

	mr.Close()

	cache.Set(ctx, "key", sampleResult()) // must not panic
	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestRedisCacheIgnoresCorruptEntry(t *testing.T) {
	cache, mr := newRedisCacheForTest(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(redisKeyPrefix+"key", "{not json"))
	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}
