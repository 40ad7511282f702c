package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/middleware"
)

type sessionKey struct{}

// requireSession rejects requests without a usable session and stores the
// parsed session for the handler to pass on.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized", err.Error()))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// sessionFromRequest reads the bearer token and the workspace header.
func sessionFromRequest(r *http.Request) (domain.Session, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return domain.Session{}, errors.New("missing bearer token")
	}

	var workspaceID int64
	err := runtime.BindStyledParameterWithOptions("simple", middleware.WorkspaceHeader,
		r.Header.Get(middleware.WorkspaceHeader), &workspaceID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Required: true})
	if err != nil || workspaceID <= 0 {
		return domain.Session{}, errors.New("missing or invalid " + middleware.WorkspaceHeader + " header")
	}

	return domain.Session{Token: strings.TrimSpace(token), WorkspaceID: workspaceID}, nil
}

// sessionFrom returns the session stored by requireSession.
func sessionFrom(r *http.Request) domain.Session {
	sess, _ := r.Context().Value(sessionKey{}).(domain.Session)
	return sess
}
