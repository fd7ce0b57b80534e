package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/features"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

// LoadFeatureFlags reads the flag file at path. A missing file falls back to
// features.DefaultConfig; an invalid file is an error.
func LoadFeatureFlags(path string, schemas validation.SchemaValidator) (*features.Evaluator, error) {
	cfg, err := features.NewLoader(path, schemas).Load()
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn(LogMsgFeatureFlagsDefaults, "path", path)
		cfg = features.DefaultConfig()
	case err != nil:
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFlags, err)
	default:
		slog.Info(LogMsgFeatureFlagsLoaded, "path", path, "count", len(cfg.Flags))
	}
	return features.NewEvaluator(cfg), nil
}
