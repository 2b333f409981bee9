// Package storage defines the persisted key-value store the watch keeps its
// scores in, and a registry of the available backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownBackend is returned by Open for names nobody registered.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a small integer key-value store that survives restarts.
type Store interface {
	// ReadInt returns the value under key and whether it exists.
	ReadInt(ctx context.Context, key uint32) (int, bool, error)
	// WriteInt stores v under key, replacing any previous value.
	WriteInt(ctx context.Context, key uint32, v int) error
	Close() error
}

// Factory constructs a Store from flag-style key/value settings.
type Factory func(cfg map[string]string) (Store, error)

var backends = map[string]Factory{}

// Register adds a backend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open constructs the named backend.
func Open(name string, cfg map[string]string) (Store, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	s, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", name, err)
	}
	return s, nil
}
