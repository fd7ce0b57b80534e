package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RunMigrations     bool

	JWTSecret      string
	JWTIssuer      string
	TrustedProxies []string

	RPCTimeout      time.Duration
	RealtimeChannel string
	PlayerCacheSize int
	PlayerCacheTTL  time.Duration

	FeatureFlagsPath string

	StripeSecretKey       string
	TokenValueCents       int
	CheckoutSweepInterval time.Duration
	CheckoutMaxAge        time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool("RUN_MIGRATIONS", true),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		RPCTimeout:      getEnvAsDuration("RPC_TIMEOUT", DefaultRPCTimeout),
		RealtimeChannel: getEnv("REALTIME_CHANNEL", DefaultRealtimeChannel),
		PlayerCacheSize: getEnvAsInt("PLAYER_CACHE_SIZE", DefaultPlayerCacheSize),
		PlayerCacheTTL:  getEnvAsDuration("PLAYER_CACHE_TTL", DefaultPlayerCacheTTL),

		FeatureFlagsPath: getEnv("FEATURE_FLAGS_PATH", ConfigPathFeatureFlags),

		StripeSecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
		TokenValueCents:       getEnvAsInt("TOKEN_VALUE_CENTS", DefaultTokenValueCents),
		CheckoutSweepInterval: getEnvAsDuration("CHECKOUT_SWEEP_INTERVAL", DefaultCheckoutSweepInterval),
		CheckoutMaxAge:        getEnvAsDuration("CHECKOUT_MAX_AGE", DefaultCheckoutMaxAge),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}
	if cfg.TokenValueCents <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_VALUE_CENTS value: must be positive, got %d", cfg.TokenValueCents)
	}

	return cfg, nil
}

// PaymentsEnabled reports whether a payment provider key was configured
func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "30s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
