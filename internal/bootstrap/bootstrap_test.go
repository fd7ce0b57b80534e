package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-10-%02d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2026-10-12_00-00-00.log")
	assert.NotContains(t, names, "session_2026-10-03_00-00-00.log")
}

func TestLoadFeatureFlags(t *testing.T) {
	schemas, err := validation.NewSchemaValidator()
	require.NoError(t, err)

	t.Run("Missing file uses defaults", func(t *testing.T) {
		eval, err := LoadFeatureFlags(filepath.Join(t.TempDir(), "absent.json"), schemas)
		require.NoError(t, err)
		assert.True(t, eval.IsEnabled(domain.FeatureSmartWarnings, "u1"))
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flags.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"flags": [{"key": "smart_warnings", "enabled": false, "rollout_percent": 0}]}`), 0o600))

		eval, err := LoadFeatureFlags(path, schemas)
		require.NoError(t, err)
		assert.False(t, eval.IsEnabled(domain.FeatureSmartWarnings, "u1"))
		assert.False(t, eval.IsEnabled(domain.FeatureRealtimeUpdates, "u1"))
	})

	t.Run("Invalid file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flags.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"flags": "nope"}`), 0o600))

		_, err := LoadFeatureFlags(path, schemas)
		assert.ErrorIs(t, err, validation.ErrSchemaViolation)
	})
}
