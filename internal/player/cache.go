package player

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// CacheConfig sizes the status cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedStatus struct {
	version string
	status  domain.PlayerStatus
}

// statusCache is an expiring LRU of player snapshots keyed by player ID
type statusCache struct {
	lru    *expirable.LRU[string, cachedStatus]
	hits   atomic.Int64
	misses atomic.Int64
}

func newStatusCache(cfg CacheConfig) *statusCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &statusCache{lru: expirable.NewLRU[string, cachedStatus](cfg.Size, nil, cfg.TTL)}
}

// Get returns a copy of the cached snapshot
func (c *statusCache) Get(playerID string) (*domain.PlayerStatus, bool) {
	entry, found := c.lru.Get(playerID)
	if !found || entry.version != CacheSchemaVersion {
		if found {
			c.lru.Remove(playerID)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	status := entry.status
	return &status, true
}

func (c *statusCache) Set(status *domain.PlayerStatus) {
	c.lru.Add(status.PlayerID, cachedStatus{version: CacheSchemaVersion, status: *status})
}

func (c *statusCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

func (c *statusCache) GetStats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.lru.Len()}
}
