package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jrsteele09/studyshell/internal/errors"
)

// Credentials is the login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup request body
type SignupRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup. User is opaque to the shell.
type AuthResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "api login: email and password are required")
	}
	return c.authenticate(ctx, EndpointLogin, creds)
}

// Signup registers a user. When the API answers with a token the session is signed in.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "api signup: email and password are required")
	}
	return c.authenticate(ctx, EndpointSignup, req)
}

// Logout clears the session. The API keeps no server side session to revoke.
func (c *Client) Logout() {
	c.session.ClearAuth()
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.Do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	if path == EndpointLogin && resp.Token == "" {
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "api login: no token in response")
	}
	if resp.Token != "" {
		c.session.SetAuth(resp.Token, resp.User)
	}
	return &resp, nil
}
