package port

import (
	"context"
	"time"

	"kunooz-ads/internal/core/domain"
)

// CacheBackend is the storage behind the render cache. Values are opaque
// bytes; a miss is reported by ok=false with a nil error.
type CacheBackend interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Generation returns the current generation for name, starting at 0.
	Generation(ctx context.Context, name string) (uint64, error)
	// BumpGeneration increments the generation for name.
	BumpGeneration(ctx context.Context, name string) (uint64, error)
}

// DedupStore remembers recently seen keys.
type DedupStore interface {
	// MarkIfAbsent stores key for ttl when it is not present and reports
	// whether it did so.
	MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// EventPublisher forwards recorded tracking events to downstream
// consumers. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.TrackingEvent) error
}
