// Package session holds the signed-in user's bearer token and profile and mirrors
// the token to a storage.Store so a restart resumes the session.
package session

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/jrsteele09/studyshell/storage"
	"github.com/rs/zerolog/log"
)

// TokenKey is the storage key the bearer token is persisted under
const TokenKey = "auth_token"

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// Holder owns the current authentication state. A Holder is safe for use by
// multiple goroutines; each mutation and its persistence call happen under one lock.
type Holder struct {
	mu         sync.RWMutex
	store      storage.Store
	token      string
	profile    json.RawMessage
	persistErr error
}

// New reads the persisted token once. A missing or unreadable token leaves the
// holder unauthenticated.
func New(store storage.Store) *Holder {
	h := &Holder{store: store}

	token, err := store.Get(TokenKey)
	switch {
	case err == nil:
		h.token = token
	case storage.IsNotFound(err):
	default:
		log.Warn().Err(err).Msg("session: failed to read persisted token, starting unauthenticated")
	}
	return h
}

// SetAuth replaces the token and profile and persists the token. A persistence
// failure is logged and the holder keeps the new state in memory only.
func (h *Holder) SetAuth(token string, profile json.RawMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = token
	h.profile = cloneRaw(profile)
	h.persistErr = h.store.Set(TokenKey, token)
	if h.persistErr != nil {
		log.Warn().Err(h.persistErr).Msg("session: token not persisted, keeping it in memory only")
	}
}

// ClearAuth drops the token and profile and deletes the persisted token.
func (h *Holder) ClearAuth() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""
	h.profile = nil
	h.persistErr = h.store.Delete(TokenKey)
	if h.persistErr != nil {
		log.Warn().Err(h.persistErr).Msg("session: persisted token not deleted")
	}
}

func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token != ""
}

// AuthorizationHeader returns {"Authorization": "Bearer <token>"}, or an empty map when signed out.
func (h *Holder) AuthorizationHeader() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" {
		return map[string]string{}
	}
	return map[string]string{headerAuthorization: bearerPrefix + h.token}
}

func (h *Holder) AccessToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Profile returns a copy of the opaque user data passed to SetAuth. The profile
// is not persisted, so it is nil after a restart until the next SetAuth.
func (h *Holder) Profile() json.RawMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneRaw(h.profile)
}

// PersistError returns the error of the last SetAuth or ClearAuth storage call.
func (h *Holder) PersistError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.persistErr
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return json.RawMessage(bytes.Clone(raw))
}
