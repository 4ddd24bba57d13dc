package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggingMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		status    int
		wantLevel logrus.Level
	}{
		{
			name:      "request id is echoed",
			requestID: "abc-123",
			status:    http.StatusOK,
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "request id is generated",
			status:    http.StatusOK,
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "server errors are logged as warnings",
			requestID: "abc-123",
			status:    http.StatusInternalServerError,
			wantLevel: logrus.WarnLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, hook := test.NewNullLogger()
			l.SetLevel(logrus.DebugLevel)

			h := NewLoggingMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			r := httptest.NewRequest(http.MethodGet, "/some/path", nil)
			if tt.requestID != "" {
				r.Header.Set(requestIDHeader, tt.requestID)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			got := w.Header().Get(requestIDHeader)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, got, entry.Data["requestID"])
			assert.Equal(t, tt.status, entry.Data["status"])
			assert.Equal(t, "/some/path", entry.Data["path"])
		})
	}
}

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var hasDeadline bool
	h := NewTimeoutMiddleware(time.Minute)(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	})

	start := time.Now()
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, start.Add(time.Minute), deadline, 5*time.Second)
}
