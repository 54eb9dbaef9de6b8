package counter

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Store when the key has never been written.
var ErrNotFound = errors.New("counter: value not found")

// Store is the persistent key-value port the counter reads and writes.
// Values are the decimal string encoding of the count.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps values in process memory. Each call is safe for
// concurrent use; a full visit is not atomic.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

type scopedStore struct {
	next   Store
	prefix string
}

// Scoped namespaces every key of store with prefix, giving each scope
// (one browser, one visitor) its own independent count.
func Scoped(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &scopedStore{next: store, prefix: prefix}
}

func (s *scopedStore) Get(ctx context.Context, key string) (string, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *scopedStore) Set(ctx context.Context, key, value string) error {
	return s.next.Set(ctx, s.prefix+key, value)
}
