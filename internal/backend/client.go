// Package backend is the typed HTTP client for the upstream REST backend
// that owns condominiums, maintenances, activities and authentication.
//
// Every call takes the caller's domain.Session explicitly; the client holds
// no credentials of its own. Each endpoint has its own request and response
// structs, and mapping to domain types happens here so nothing above this
// package sees the wire format.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/idempotency"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// Client talks to the upstream backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	http       *http.Client
	timeout    time.Duration
	maxRetries uint64
	backoff    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client. The client is not
// modified; WithTimeout applies to a copy.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries sets how many times a retryable call is repeated and the base
// delay of the exponential backoff between attempts.
func WithRetries(max uint64, base time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = max
		c.backoff = base
	}
}

// New constructs a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend.New: base URL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{},
		timeout:    10 * time.Second,
		maxRetries: 2,
		backoff:    200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.http.Timeout != c.timeout {
		h := *c.http
		h.Timeout = c.timeout
		c.http = &h
	}
	return c, nil
}

// Receipt describes how a mutation was delivered upstream. It is filled in
// even when the call fails, so the caller can record the attempt.
type Receipt struct {
	Method         string
	Path           string
	IdempotencyKey string
	StatusCode     int // 0 when no response was received
}

// StatusError is returned when the backend answers with a non-2xx status.
// It unwraps to the domain sentinel matching the status code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		return domain.ErrUpstream
	}
}

// call describes a single upstream request.
type call struct {
	method  string
	path    string
	session *domain.Session
	headers map[string]string
	body    any
	out     any

	// retry allows the call to be repeated on transport errors and 5xx.
	// Only reads and keyed creates set it.
	retry bool
}

// do executes c, retrying when allowed, and returns the last HTTP status
// seen (0 if none).
func (cl *Client) do(ctx context.Context, c call) (int, error) {
	var payload []byte
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	var status int
	attempt := func(ctx context.Context) error {
		var err error
		status, err = cl.send(ctx, c, payload)
		if err != nil && c.retry && retryable(status) {
			return retry.RetryableError(err)
		}
		return err
	}

	if !c.retry || cl.maxRetries == 0 {
		return status, attempt(ctx)
	}
	backoff := retry.WithMaxRetries(cl.maxRetries, retry.NewExponential(cl.backoff))
	return status, retry.Do(ctx, backoff, attempt)
}

// send performs one HTTP round trip.
func (cl *Client) send(ctx context.Context, c call, payload []byte) (int, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, c.method, cl.baseURL+c.path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := cl.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read response: %w", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if c.out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, c.out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
		}
	}
	return resp.StatusCode, nil
}

// retryable reports whether a failed attempt with the given status may be
// repeated. Status 0 means the request never got a response.
func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

// errorMessage extracts a human-readable message from an error body.
// The backend usually sends {"message": "..."}; anything else is returned
// as trimmed text.
func errorMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Message) > 0 {
		var s string
		if json.Unmarshal(body.Message, &s) == nil {
			return s
		}
		// NestJS-style validation errors send a list of messages.
		var list []string
		if json.Unmarshal(body.Message, &list) == nil {
			return strings.Join(list, "; ")
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// keyHeader returns the header map carrying an idempotency key.
func keyHeader(key string) map[string]string {
	return map[string]string{idempotency.Header: key}
}

func workspacePath(sess domain.Session, format string, args ...any) string {
	return "/workspaces/" + strconv.FormatInt(sess.WorkspaceID, 10) + fmt.Sprintf(format, args...)
}

// parseTime accepts the timestamp layouts the backend is known to emit.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := parseTime(*s)
	if !ok {
		return nil
	}
	return &t
}
