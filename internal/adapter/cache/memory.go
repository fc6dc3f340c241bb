// Package cache holds the render cache and its storage backends.
package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/maypok86/otter"
	"github.com/puzpuzpuz/xsync/v4"

	"kunooz-ads/internal/core/port"
)

// MemoryBackend keeps entries in a bounded in-process otter cache. Each
// entry carries its own TTL. Generations live outside the cache so they are
// never evicted.
type MemoryBackend struct {
	entries     otter.CacheWithVariableTTL[string, []byte]
	generations *xsync.Map[string, *atomic.Uint64]
}

var _ port.CacheBackend = (*MemoryBackend)(nil)

// NewMemoryBackend returns a backend holding at most maxEntries values.
func NewMemoryBackend(maxEntries int) (*MemoryBackend, error) {
	entries, err := otter.MustBuilder[string, []byte](maxEntries).
		Cost(func(_ string, _ []byte) uint32 { return 1 }).
		WithVariableTTL().
		Build()
	if err != nil {
		return nil, fmt.Errorf("cache: build memory backend: %w", err)
	}
	return &MemoryBackend{
		entries:     entries,
		generations: xsync.NewMap[string, *atomic.Uint64](),
	}, nil
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.entries.Get(key)
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.entries.Set(key, value, ttl)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.entries.Delete(key)
	return nil
}

func (m *MemoryBackend) Generation(_ context.Context, name string) (uint64, error) {
	if ctr, ok := m.generations.Load(name); ok {
		return ctr.Load(), nil
	}
	return 0, nil
}

func (m *MemoryBackend) BumpGeneration(_ context.Context, name string) (uint64, error) {
	ctr, _ := m.generations.LoadOrStore(name, new(atomic.Uint64))
	return ctr.Add(1), nil
}

// Close stops otter's background maintenance.
func (m *MemoryBackend) Close() {
	m.entries.Close()
}
