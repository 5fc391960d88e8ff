package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trustme/internal/logger"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "caller trace id is reused", requestTraceID: "my-custom-trace-id"},
		{name: "uuid from caller is reused", requestTraceID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing trace id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
		})
	}
}

func TestWithTraceID_DoesNotMutateHandlerLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	h.logger.Info().Msg("outside")
	assert.NotContains(t, buf.String(), "abc")
}
