package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/trustme/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger with the caller's X-Trace-ID, or a new
// UUIDv7 when absent, and echoes it in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
