package memstore

import (
	"fmt"
	"sync"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is an in-memory implementation of storage.Store. Values do not survive the process.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

func (s *Store) Get(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", errors.ErrNotFound
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
