// Package storage defines the persistent key-value storage the shell keeps its
// authentication token in. Implementations live in the sub packages.
package storage

import "github.com/jrsteele09/studyshell/internal/errors"

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value stored under key, or errors.ErrNotFound when the key is absent
	Get(key string) (string, error)

	// Set creates or overwrites the value stored under key
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.ErrNotFound)
}
