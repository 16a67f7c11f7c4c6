package session

import (
	"github.com/jrsteele09/studyshell/internal/errors"
	"golang.org/x/oauth2"
)

var _ oauth2.TokenSource = (*Holder)(nil)

// Token implements oauth2.TokenSource so the holder can back an oauth2.NewClient.
// The token carries no expiry; the API is the judge of its validity.
func (h *Holder) Token() (*oauth2.Token, error) {
	token := h.AccessToken()
	if token == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
