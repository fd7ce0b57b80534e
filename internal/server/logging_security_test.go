package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodGet, RealtimePath+"?"+QueryParamAccessToken+"=query-secret", nil)
	req.Header.Set(HeaderCookie, "session=secret-cookie-123")
	req.Header.Set(HeaderAuthorization, "Bearer header-secret")
	req.Header.Set("User-Agent", "RallyLifeClient/2.1")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-cookie-123")
	assert.NotContains(t, out, "header-secret")
	assert.NotContains(t, out, "query-secret", "query strings are never logged")
	assert.Contains(t, out, "RallyLifeClient/2.1")
	assert.Contains(t, out, "request_id=")
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	buf := captureLogs(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Empty(t, buf.String())

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Contains(t, buf.String(), LogMsgRequestCompleted)
}
