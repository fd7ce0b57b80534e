package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newStatusCache(CacheConfig{Size: 10, TTL: time.Minute})

	status := &domain.PlayerStatus{PlayerID: "p1", CurrentHP: 80, MaxHP: 100}
	cache.Set(status)

	retrieved, found := cache.Get("p1")
	require.True(t, found)
	assert.Equal(t, status, retrieved)

	cache.Invalidate("p1")

	retrieved, found = cache.Get("p1")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := newStatusCache(CacheConfig{Size: 10, TTL: time.Minute})

	status := &domain.PlayerStatus{PlayerID: "p1", CurrentHP: 80}
	cache.Set(status)
	status.CurrentHP = 1

	first, _ := cache.Get("p1")
	first.CurrentHP = 2

	second, found := cache.Get("p1")
	require.True(t, found)
	assert.Equal(t, 80, second.CurrentHP)
}

func TestCacheStats(t *testing.T) {
	cache := newStatusCache(CacheConfig{Size: 10, TTL: time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	cache.Get("p1")
	stats = cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	cache.Set(&domain.PlayerStatus{PlayerID: "p1"})
	cache.Get("p1")
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheExpiry(t *testing.T) {
	cache := newStatusCache(CacheConfig{Size: 10, TTL: 20 * time.Millisecond})

	cache.Set(&domain.PlayerStatus{PlayerID: "p1"})
	assert.Eventually(t, func() bool {
		_, found := cache.Get("p1")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1024, cfg.Size)
	assert.Equal(t, 30*time.Second, cfg.TTL)

	cache := newStatusCache(CacheConfig{})
	cache.Set(&domain.PlayerStatus{PlayerID: "p1"})
	_, found := cache.Get("p1")
	assert.True(t, found, "zero config falls back to defaults")
}
