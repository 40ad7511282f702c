package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/comdominio/dashboard/internal/idempotency"
)

// NewSlogLogger returns a middleware that logs each request as one structured
// line via log. Besides method, path, status and duration it records the
// request ID set by chi's RequestID middleware, the workspace header and any
// client-supplied idempotency key, so repeated submissions can be traced.
//
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// WrapResponseWriter intercepts WriteHeader so we can read the
			// status code after the downstream handler has run.
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			}
			if ws := r.Header.Get(WorkspaceHeader); ws != "" {
				attrs = append(attrs, "workspace_id", ws)
			}
			// The handler echoes the key it used, derived or not.
			if key := ww.Header().Get(idempotency.Header); key != "" {
				attrs = append(attrs, "idempotency_key", key)
			}

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "request", attrs...)
		})
	}
}
