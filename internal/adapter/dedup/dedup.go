// Package dedup suppresses repeated tracking events from the same client
// within the event type's cooldown window.
package dedup

import (
	"context"
	"log/slog"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/telemetry"
)

// Deduplicator decides whether a tracking event should be counted.
type Deduplicator struct {
	store    port.DedupStore
	failOpen bool
	log      *slog.Logger
}

// New returns a Deduplicator over store. With failOpen set, events are
// counted when the store errors; otherwise they are dropped.
func New(store port.DedupStore, failOpen bool, log *slog.Logger) *Deduplicator {
	return &Deduplicator{store: store, failOpen: failOpen, log: log}
}

// Key returns the store key for an event.
func Key(t domain.EventType, clientKey string) string {
	return "dedup:" + string(t) + ":" + clientKey
}

// ShouldRecord reports whether this is the first event of type t for
// clientKey within the cooldown, marking it if so.
func (d *Deduplicator) ShouldRecord(ctx context.Context, t domain.EventType, clientKey string) bool {
	marked, err := d.store.MarkIfAbsent(ctx, Key(t, clientKey), t.Cooldown())
	if err != nil {
		telemetry.DedupErrors.WithLabelValues(string(t)).Inc()
		d.log.WarnContext(ctx, "dedup store failed",
			slog.String("event", string(t)),
			slog.Bool("fail_open", d.failOpen),
			slog.Any("error", err),
		)
		return d.failOpen
	}
	return marked
}
