package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger logs one structured record per request once the response is written.
// Server errors log at ERROR, client errors at WARN, everything else at INFO.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(sr, r)

		level := slog.LevelInfo
		switch {
		case sr.statusCode >= http.StatusInternalServerError:
			level = slog.LevelError
		case sr.statusCode >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		slog.Log(r.Context(), level, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", GetRequestID(r.Context()),
			"remote_addr", r.RemoteAddr)
	})
}
