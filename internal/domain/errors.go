package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist,
// either in the local ledger or upstream.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. missing name, CNPJ without 14 digits, month out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a submission collides with an existing
// record, either caught by the duplicate-name guard or reported upstream.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when the session is missing or the upstream
// backend rejected its credentials.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream is returned when the upstream backend failed or answered
// with something the gateway could not interpret.
// Handlers should map this to HTTP 502.
var ErrUpstream = errors.New("upstream error")
