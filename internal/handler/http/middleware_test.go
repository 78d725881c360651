package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	h := newTestHandler(&service.Services{})

	t.Run("caller id is echoed", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "trace-42"})
		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		first := do(t, h, http.MethodGet, "/api/version", "", nil).Header().Get(traceIDHeader)
		second := do(t, h, http.MethodGet, "/api/version", "", nil).Header().Get(traceIDHeader)

		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
	})
}

func TestStatusRecorder(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBytes  int
	}{
		{
			name:       "implicit 200",
			handler:    func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") },
			wantStatus: http.StatusOK,
			wantBytes:  4,
		},
		{
			name: "first status sticks",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusConflict)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := httptest.NewRecorder()
			rec := &statusRecorder{ResponseWriter: inner}

			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.status)
			assert.Equal(t, tt.wantStatus, inner.Code)
			assert.Equal(t, tt.wantBytes, rec.bytes)
		})
	}
}

func TestBookingHashing(t *testing.T) {
	const key = "booking_key"
	body := `{"doctor_id":1,"date":"2026-10-16","slot":"10:00 AM"}`

	tests := []struct {
		name       string
		hashKey    string
		header     string
		wantStatus int
	}{
		{name: "no key configured", hashKey: "", header: "", wantStatus: http.StatusNoContent},
		{name: "valid signature", hashKey: key, header: utils.HashString(body, key), wantStatus: http.StatusNoContent},
		{name: "signature for another key", hashKey: key, header: utils.HashString(body, "other"), wantStatus: http.StatusBadRequest},
		{name: "not hex", hashKey: key, header: "zz", wantStatus: http.StatusBadRequest},
		{name: "missing header", hashKey: key, header: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.hashKey, 0, logger.Nop())

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				seen = string(b)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
			if tt.header != "" {
				req.Header.Set(utils.HashHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.bookingHashing(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, body, seen, "body must reach the handler intact")
			} else {
				assert.Contains(t, rec.Body.String(), app.MsgInvalidHash)
			}
		})
	}
}

func TestUnsupportedMethod(t *testing.T) {
	rec := httptest.NewRecorder()

	unsupportedMethod(rec, httptest.NewRequest(http.MethodPatch, "/api/version", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
