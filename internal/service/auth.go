package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/comdominio/dashboard/internal/domain"
)

// AuthService exchanges credentials for a backend session.
type AuthService struct {
	api AuthBackend
}

// NewAuthService constructs an AuthService.
func NewAuthService(api AuthBackend) *AuthService {
	return &AuthService{api: api}
}

// Login validates the credentials and forwards them upstream.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := creds.Validate(); err != nil {
		return domain.LoginResult{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	result, err := s.api.Login(ctx, creds)
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return result, nil
}
