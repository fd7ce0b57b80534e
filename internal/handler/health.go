package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
)

const readinessTimeout = 2 * time.Second

// Readiness check names and states
const (
	CheckDatabase = "database"
	CheckRealtime = "realtime"

	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusDisabled    = "disabled"
)

// StreamCounter reports how many realtime streams are open
type StreamCounter interface {
	SubscriberCount() int
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
	Streams *int              `json:"realtime_streams,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports whether the service can take traffic. Only the
// database gates readiness; realtime is informational since previews and
// completions work without it. streams may be nil when realtime is off.
// @Summary Readiness check
// @Description Returns OK if the database is reachable, with per-dependency checks
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, streams StreamCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: StatusOK, Checks: map[string]string{CheckDatabase: StatusOK, CheckRealtime: StatusDisabled}}
		if streams != nil {
			n := streams.SubscriberCount()
			resp.Checks[CheckRealtime] = StatusOK
			resp.Streams = &n
		}

		if err := dbPool.Ping(ctx); err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err)
			resp.Status = StatusUnavailable
			resp.Message = "database connection failed"
			resp.Checks[CheckDatabase] = StatusUnavailable
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
