package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

func writeFlags(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feature_flags.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T, path string) *Loader {
	t.Helper()
	schemas, err := validation.NewSchemaValidator()
	require.NoError(t, err)
	return NewLoader(path, schemas)
}

func TestLoader_Load(t *testing.T) {
	path := writeFlags(t, `{"flags": [
		{"key": "smart_warnings", "description": "risk hints", "enabled": true, "rollout_percent": 25, "allow_list": ["coach-1"]}
	]}`)

	cfg, err := newLoader(t, path).Load()

	require.NoError(t, err)
	require.Len(t, cfg.Flags, 1)
	assert.Equal(t, "smart_warnings", cfg.Flags[0].Key)
	assert.Equal(t, 25, cfg.Flags[0].RolloutPercent)
	assert.Equal(t, []string{"coach-1"}, cfg.Flags[0].AllowList)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := newLoader(t, filepath.Join(t.TempDir(), "absent.json")).Load()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := writeFlags(t, `{"flags": [{"key": "smart_warnings", "enabled": true, "rollout_percent": 101}]}`)
		_, err := newLoader(t, path).Load()
		assert.ErrorIs(t, err, validation.ErrSchemaViolation)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeFlags(t, `{"flags": [{"key": "smart_warnings", "enabled": true, "rollout_percent": 10, "owner": "me"}]}`)
		_, err := newLoader(t, path).Load()
		assert.Error(t, err)
	})

	t.Run("duplicate key", func(t *testing.T) {
		path := writeFlags(t, `{"flags": [
			{"key": "smart_warnings", "enabled": true, "rollout_percent": 10},
			{"key": "smart_warnings", "enabled": false, "rollout_percent": 0}
		]}`)
		_, err := newLoader(t, path).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate feature flag")
	})
}
