// Package api is the shell's HTTP client for the study assistant backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	headerRequestID   = "X-Request-ID"
	contentTypeJSON   = "application/json"
	maxErrorBodyBytes = 4 << 10
)

// HeaderProvider supplies credential headers for outbound requests. *session.Holder implements it.
type HeaderProvider interface {
	AuthorizationHeader() map[string]string
}

// SessionWriter records a successful login. *session.Holder implements it.
type SessionWriter interface {
	HeaderProvider
	SetAuth(token string, profile json.RawMessage)
	ClearAuth()
}

// Error is returned for non-2xx responses
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Unauthorized reports whether the API rejected the credentials
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client calls the API at baseURL, attaching the session's authorization header to every request.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionWriter
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func NewClient(baseURL string, session SessionWriter, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends in as a JSON body (when non-nil) and decodes a JSON response into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api %s %s encode: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", contentTypeJSON)
	if in != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	for k, v := range c.session.AuthorizationHeader() {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		apiErr := &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Str("path", path).Msg("api request failed")
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrapf(errors.ErrInvalidResponse, "api %s %s decode: %v", method, path, err)
	}
	return nil
}
