package config

import "time"

// Configuration file paths
const (
	ConfigPathFeatureFlags = "configs/feature_flags.json"
)

// Defaults applied when a variable is unset
const (
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultVersion           = "dev"
	DefaultDBName            = "acearena"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultRPCTimeout        = 5 * time.Second
	DefaultRealtimeChannel   = "player_updates"
	DefaultPlayerCacheSize   = 1024
	DefaultPlayerCacheTTL    = 30 * time.Second
	DefaultTokenValueCents   = 10

	DefaultCheckoutSweepInterval = 15 * time.Minute
	DefaultCheckoutMaxAge        = 24 * time.Hour
)
