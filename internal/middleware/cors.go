// Package middleware provides the HTTP middleware shared by every route of
// the dashboard gateway.
package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/comdominio/dashboard/internal/idempotency"
)

// WorkspaceHeader carries the workspace the dashboard is acting in.
const WorkspaceHeader = "X-Workspace-Id"

// NewCORSHandler returns a middleware that applies CORS headers for the
// dashboard origins. The browser may send an idempotency key and the
// workspace header, and may read back the echoed key and the report
// download name.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", idempotency.Header, WorkspaceHeader},
		ExposedHeaders: []string{idempotency.Header, "Content-Disposition"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
