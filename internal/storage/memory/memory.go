// Package memory provides a process-local Store, used by tests and by
// -store=memory runs that should not touch disk.
package memory

import (
	"context"
	"sync"

	"pingpong/internal/storage"
)

// Store keeps values in a map.
type Store struct {
	mu     sync.Mutex
	values map[uint32]int
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[uint32]int)}
}

// ReadInt returns the value under key.
func (s *Store) ReadInt(ctx context.Context, key uint32) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// WriteInt stores v under key.
func (s *Store) WriteInt(ctx context.Context, key uint32, v int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	return nil
}

// Close is a no-op; the values stay readable.
func (s *Store) Close() error { return nil }

func init() {
	storage.Register("memory", func(map[string]string) (storage.Store, error) {
		return New(), nil
	})
}
