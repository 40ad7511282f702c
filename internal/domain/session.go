package domain

import "encoding/json"

// Session carries the credentials and tenant of the dashboard user. It is
// built from each incoming request and passed explicitly to every call
// that reaches the upstream backend.
type Session struct {
	Token       string
	WorkspaceID int64
}

// Valid reports whether both the token and the workspace are present.
func (s Session) Valid() bool {
	return s.Token != "" && s.WorkspaceID > 0
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both fields are present and the email is well formed.
func (c Credentials) Validate() error {
	return validateStruct(c)
}

// LoginResult is what a successful login hands back to the dashboard.
// User is the upstream user document, passed through untouched.
type LoginResult struct {
	AccessToken string
	WorkspaceID int64
	User        json.RawMessage
}
