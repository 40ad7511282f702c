package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/handler"
)

func TestSession_401(t *testing.T) {
	tests := []struct {
		name      string
		auth      string
		workspace string
	}{
		{"no authorization", "", "7"},
		{"not bearer", "Basic dXNlcjpwYXNz", "7"},
		{"empty token", "Bearer ", "7"},
		{"no workspace", "Bearer tok", ""},
		{"workspace not a number", "Bearer tok", "abc"},
		{"workspace zero", "Bearer tok", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			h := newHTTPHandler(handler.Services{Condominiums: &mockCondominiumServicer{
				list: func(context.Context, domain.Session) ([]domain.Condominium, error) {
					called = true
					return nil, nil
				},
			}})

			req := httptest.NewRequest(http.MethodGet, "/api/condominiums", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			if tc.workspace != "" {
				req.Header.Set("X-Workspace-Id", tc.workspace)
			}
			rec := serve(h, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", decodeError(t, rec).Error.Code)
			assert.False(t, called)
		})
	}
}

func TestSession_PassedToService(t *testing.T) {
	var got domain.Session
	h := newHTTPHandler(handler.Services{Condominiums: &mockCondominiumServicer{
		list: func(_ context.Context, sess domain.Session) ([]domain.Condominium, error) {
			got = sess
			return nil, nil
		},
	}})

	rec := serve(h, newRequest(http.MethodGet, "/api/condominiums", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSession, got)
}

func TestSession_UpstreamRejectionIs401(t *testing.T) {
	h := newHTTPHandler(handler.Services{Dashboard: &mockDashboardServicer{
		summary: func(context.Context, domain.Session) (domain.DashboardSummary, error) {
			return domain.DashboardSummary{}, domain.ErrUnauthorized
		},
	}})

	rec := serve(h, newRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
