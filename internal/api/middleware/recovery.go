package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/cycle-phase/pkg/problem"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				slog.ErrorContext(r.Context(), "panic recovered",
					"error", err,
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
					"stack", string(debug.Stack()))
				problem.InternalError("An unexpected error occurred").WithInstance(r.URL.Path).Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
