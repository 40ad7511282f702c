package handler

import (
	"encoding/json"
	"net/http"

	"github.com/comdominio/dashboard/internal/domain"
)

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries what the dashboard needs to build its session.
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	WorkspaceID int64           `json:"workspaceId"`
	User        json.RawMessage `json:"user,omitempty"`
}

// Login handles POST /api/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body LoginRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	res, err := s.auth.Login(r.Context(), domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		s.writeError(w, r, err, "account not found")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: res.AccessToken,
		WorkspaceID: res.WorkspaceID,
		User:        res.User,
	})
}
