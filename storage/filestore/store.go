// Package filestore persists key-value pairs as a single JSON document on disk.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/storage"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

var _ storage.Store = (*Store)(nil)

// Store keeps every key in one JSON object at path. Each Set or Delete rewrites
// the file through a temporary file and rename, so a crash leaves either the old
// or the new document.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by path. The file and its directory are created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
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

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

func (s *Store) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrStorageUnavailable, "filestore read %s: %v", s.path, err)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(errors.ErrStorageUnavailable, "filestore decode %s: %v", s.path, err)
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore mkdir %s: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore temp file: %v", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore write: %v", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore chmod: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore close: %v", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "filestore rename: %v", err)
	}
	return nil
}
