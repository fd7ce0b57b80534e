package player

import "time"

// CacheSchemaVersion is bumped when the cached snapshot shape changes so
// stale entries are discarded
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// Log messages
const (
	LogMsgStatusCacheHit  = "Player status served from cache"
	LogMsgStatusLoaded    = "Player status loaded"
	LogMsgStatusInvalided = "Player status invalidated"
	LogMsgStatusLoadStale = "Player status invalidated during load, not cached"
)
