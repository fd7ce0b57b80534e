package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRiskCommand(t *testing.T) {
	out, err := run(t, "risk", "--type", "training", "--duration", "90", "--hp", "15", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"too_risky": true, "alternatives": [30, 45, 60]}`, out)

	out, err = run(t, "risk", "--type", "training", "--duration", "90", "--hp", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "try 30, 45, 60 minutes")

	out, err = run(t, "risk", "--type", "match", "--duration", "120", "--hp", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "is affordable")
}

func TestCalculateCommand(t *testing.T) {
	out, err := run(t, "calculate", "--type", "match", "--duration", "60", "--level", "5", "--stakes", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "OUTCOME")
	assert.Contains(t, out, "rake 10, net payout 90")
}

func TestBracketsCommand(t *testing.T) {
	out, err := run(t, "brackets", "wellbeing")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "wellbeing"), line)
	}

	_, err = run(t, "brackets", "squash")
	assert.ErrorIs(t, err, domain.ErrInvalidSessionType)
}

func TestPreviewCommand_RejectsBadDuration(t *testing.T) {
	_, err := run(t, "preview", "--duration", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestTokenSign(t *testing.T) {
	const subject = "0d5f6b1e-8a0c-4c53-9a59-3f0d8b0f4a11"
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "")

	out, err := run(t, "token", "sign", "--subject", subject)
	require.NoError(t, err)

	claims, err := auth.NewVerifier("cli-secret", "").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)

	_, err = run(t, "token", "sign", "--subject", "not-a-uuid")
	assert.Error(t, err)
}
