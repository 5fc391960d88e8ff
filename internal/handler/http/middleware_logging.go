package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/trustme/internal/logger"
)

// withLogging writes one access log entry per request. The Authorization
// header and bodies are never logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
