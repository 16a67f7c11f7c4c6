package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/studyshell/internal/errors"
)

// Claims is the informational view of a JWT bearer token. The signature is
// never checked, so nothing here may be used for authorization decisions.
type Claims struct {
	Subject   string
	Issuer    string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// Expired reports whether the exp claim is in the past relative to now
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// Claims decodes the current token without verification. Opaque tokens return errors.ErrInvalidToken.
func (h *Holder) Claims() (*Claims, error) {
	raw := h.AccessToken()
	if raw == "" {
		return nil, errors.ErrNotAuthenticated
	}

	var rc jwtlib.RegisteredClaims
	if _, _, err := jwtlib.NewParser().ParseUnverified(raw, &rc); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidToken, "session claims: %v", err)
	}

	c := &Claims{
		Subject: rc.Subject,
		Issuer:  rc.Issuer,
	}
	if rc.IssuedAt != nil {
		t := rc.IssuedAt.Time
		c.IssuedAt = &t
	}
	if rc.ExpiresAt != nil {
		t := rc.ExpiresAt.Time
		c.ExpiresAt = &t
	}
	return c, nil
}
