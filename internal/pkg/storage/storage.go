// Package storage adapts any fiber.Storage implementation to the counter
// storage port.
package storage

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/visitas/internal/pkg/config"
	"github.com/ManuelReschke/visitas/internal/pkg/counter"
)

// NewRedisStorage returns a gofiber redis storage for cfg. It uses the
// database after cfg.DB so its keys stay apart from the plain redis store.
// The storage pings the server on creation; an unreachable server is
// reported as an error instead of the library's panic.
func NewRedisStorage(cfg config.Cache) (backend fiber.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("redis storage at %s: %v", cfg.Addr(), r)
		}
	}()
	return redis.New(redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		Database: (cfg.DB + 1) % 16,
		Reset:    false,
	}), nil
}

// Store keeps counter values in a fiber.Storage. Values never expire.
type Store struct {
	backend fiber.Storage
	prefix  string
}

func NewStore(backend fiber.Storage, prefix string) *Store {
	return &Store{backend: backend, prefix: prefix}
}

// fiber.Storage has no context parameter; ctx is only checked for cancellation.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	val, err := s.backend.Get(s.prefix + key)
	if err != nil {
		return "", fmt.Errorf("storage get %s: %w", key, err)
	}
	// fiber.Storage reports a missing key as nil, nil
	if val == nil {
		return "", counter.ErrNotFound
	}
	return string(val), nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.backend.Set(s.prefix+key, []byte(value), 0); err != nil {
		return fmt.Errorf("storage set %s: %w", key, err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
