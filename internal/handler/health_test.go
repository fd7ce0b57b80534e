package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

type stubStreams int

func (s stubStreams) SubscriberCount() int { return int(s) }

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		streams        StreamCounter
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database reachable, realtime off",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{"database":"ok","realtime":"disabled"}}`,
		},
		{
			name:           "database reachable with open streams",
			streams:        stubStreams(3),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{"database":"ok","realtime":"ok"},"realtime_streams":3}`,
		},
		{
			name:           "database down",
			pingErr:        errors.New("connection refused"),
			streams:        stubStreams(0),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable","message":"database connection failed","checks":{"database":"unavailable","realtime":"ok"},"realtime_streams":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := new(MockDBPool)
			pool.On("Ping", mock.Anything).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			HandleReadyz(pool, tt.streams)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			pool.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.4.2")

	rec := httptest.NewRecorder()
	HandleVersion()(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"1.4.2"`)
}
