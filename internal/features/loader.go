package features

import (
	"fmt"
	"os"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

// Config is the complete set of flag definitions
type Config struct {
	Flags []domain.FeatureFlag `json:"flags"`
}

// DefaultConfig is used when no flag file is present
func DefaultConfig() Config {
	return Config{Flags: []domain.FeatureFlag{
		{
			Key:            domain.FeatureSmartWarnings,
			Description:    "Include risk warnings in session previews",
			Enabled:        true,
			RolloutPercent: BucketCount,
		},
		{
			Key:            domain.FeatureRealtimeUpdates,
			Description:    "Stream HP and XP changes over server-sent events",
			Enabled:        true,
			RolloutPercent: BucketCount,
		},
	}}
}

// Loader reads flag definitions from a JSON file
type Loader struct {
	path    string
	schemas validation.SchemaValidator
}

// NewLoader creates a new feature flag loader
func NewLoader(path string, schemas validation.SchemaValidator) *Loader {
	return &Loader{path: path, schemas: schemas}
}

// Load reads and validates the flag file. The returned error wraps
// os.ErrNotExist when the file is missing.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return Config{}, fmt.Errorf(ErrMsgReadFileFailed, l.path, err)
	}

	var cfg Config
	if err := l.schemas.Decode(data, validation.SchemaFeatureFlags, &cfg); err != nil {
		return Config{}, fmt.Errorf(ErrMsgParseFileFailed, l.path, err)
	}

	seen := make(map[string]bool, len(cfg.Flags))
	for _, flag := range cfg.Flags {
		if seen[flag.Key] {
			return Config{}, fmt.Errorf(ErrMsgParseFileFailed, l.path, fmt.Errorf(ErrMsgDuplicateFlag, flag.Key))
		}
		seen[flag.Key] = true
	}

	return cfg, nil
}
