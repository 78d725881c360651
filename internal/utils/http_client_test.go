package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendHTTPClient_Settings(t *testing.T) {
	c := NewBackendHTTPClient("http://localhost:8080", 3*time.Second)

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 3*time.Second, c.GetClient().Timeout)
	assert.Equal(t, backendRetries, c.RetryCount)
	assert.Equal(t, "application/json", c.Header.Get("Accept"))
}

func TestNewBackendHTTPClient_Retries(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "503 is retried", status: http.StatusServiceUnavailable, wantCalls: backendRetries + 1},
		{name: "404 is final", status: http.StatusNotFound, wantCalls: 1},
		{name: "200 is final", status: http.StatusOK, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewBackendHTTPClient(srv.URL, time.Second)
			c.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(time.Millisecond)

			resp, err := c.R().Get("/api/version")

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
