package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/comdominio/dashboard/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string          `json:"access_token"`
	WorkspaceID json.Number     `json:"workspaceId"`
	User        json.RawMessage `json:"user"`
}

// Login handles POST /login. Wrong credentials surface as
// domain.ErrUnauthorized.
func (cl *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var out loginResponse
	_, err := cl.do(ctx, call{
		method: http.MethodPost,
		path:   "/login",
		body:   loginRequest{Email: creds.Email, Password: creds.Password},
		out:    &out,
	})
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("backend.Client.Login: %w", err)
	}
	if out.AccessToken == "" {
		return domain.LoginResult{}, fmt.Errorf("backend.Client.Login: %w: no access token in response", domain.ErrUpstream)
	}

	result := domain.LoginResult{AccessToken: out.AccessToken, User: out.User}
	if out.WorkspaceID != "" {
		ws, err := out.WorkspaceID.Int64()
		if err != nil {
			return domain.LoginResult{}, fmt.Errorf("backend.Client.Login: %w: workspaceId %q", domain.ErrUpstream, out.WorkspaceID)
		}
		result.WorkspaceID = ws
	}
	return result, nil
}
