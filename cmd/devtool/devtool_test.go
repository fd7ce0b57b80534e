package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&CheckCoverageCommand{})
	r.Register(&HealthCheckCommand{})

	var names []string
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"check-coverage", "health-check", "migrate", "wait-for-db"}, names)

	_, ok := r.Get("migrate")
	assert.True(t, ok)
	_, ok = r.Get("deploy")
	assert.False(t, ok)
}

func TestParseTotalCoverage(t *testing.T) {
	tests := []struct {
		name      string
		out       string
		expected  float64
		wantError bool
	}{
		{
			name:     "cover func output",
			out:      "internal/rewards/calculator.go:51:\tBrackets\t100.0%\ntotal:\t\t\t(statements)\t83.4%\n",
			expected: 83.4,
		},
		{name: "no total line", out: "internal/x.go:1:\tF\t50.0%\n", wantError: true},
		{name: "garbled percentage", out: "total:\t(statements)\tabc%\n", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTotalCoverage(tt.out)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestParseCoverageArgs(t *testing.T) {
	cfg, err := parseCoverageArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultCoverageFile, cfg.file)
	assert.Equal(t, defaultCoverageThreshold, cfg.threshold)

	cfg, err = parseCoverageArgs([]string{"-pkgs", "./internal/rewards, ./internal/player", "out/c.out", "70", "./internal/gateway"})
	require.NoError(t, err)
	assert.Equal(t, "out/c.out", cfg.file)
	assert.Equal(t, 70.0, cfg.threshold)
	assert.Equal(t, []string{"./internal/gateway", "./internal/rewards", "./internal/player"}, cfg.packages)

	_, err = parseCoverageArgs([]string{"../escape.out"})
	assert.Error(t, err)

	_, err = parseCoverageArgs([]string{"c.out", "lots"})
	assert.Error(t, err)
}

func TestBaseURLFor(t *testing.T) {
	t.Setenv("STAGING_URL", "https://staging.example.test")

	url, err := baseURLFor(envStaging)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.test", url)

	_, err = baseURLFor("qa")
	assert.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "arena")
	assert.Equal(t, "postgres://svc:pw@db:6543/arena?sslmode=disable", databaseURL())

	t.Setenv("DB_URL", "postgres://override")
	assert.Equal(t, "postgres://override", databaseURL())
}
