// Package redisstore persists key-value pairs in Redis so several shell
// instances can share one login.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jrsteele09/studyshell/internal/errors"
	"github.com/jrsteele09/studyshell/storage"
	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 2 * time.Second

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a Redis client. Every key is namespaced with prefix.
type Store struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
}

// New wraps an existing client
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		client:  client,
		prefix:  prefix,
		timeout: defaultTimeout,
	}
}

// Open parses a redis:// URL and connects
func Open(url, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redisstore parse url: %w", err)
	}
	return New(redis.NewClient(opts), prefix), nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "redisstore ping: %v", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", errors.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(errors.ErrStorageUnavailable, "redisstore get %s: %v", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "redisstore set %s: %v", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrapf(errors.ErrStorageUnavailable, "redisstore delete %s: %v", key, err)
	}
	return nil
}
