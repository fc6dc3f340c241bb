package dedup

import (
	"context"
	"log/slog"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/robfig/cron/v3"

	"kunooz-ads/internal/core/port"
)

// MemoryStore keeps dedup keys with their expiry in a concurrent map.
// Expired keys are treated as absent; Sweep reclaims them.
type MemoryStore struct {
	keys *xsync.Map[string, time.Time]
	now  func() time.Time
}

var _ port.DedupStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store. A nil now uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{keys: xsync.NewMap[string, time.Time](), now: now}
}

func (s *MemoryStore) MarkIfAbsent(_ context.Context, key string, ttl time.Duration) (bool, error) {
	now := s.now()
	var marked bool
	s.keys.Compute(key, func(expiry time.Time, loaded bool) (time.Time, xsync.ComputeOp) {
		if loaded && now.Before(expiry) {
			return expiry, xsync.CancelOp
		}
		marked = true
		return now.Add(ttl), xsync.UpdateOp
	})
	return marked, nil
}

// Len returns the number of stored keys, expired or not.
func (s *MemoryStore) Len() int {
	return s.keys.Size()
}

// Sweep deletes expired keys and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	removed := 0
	s.keys.Range(func(key string, _ time.Time) bool {
		s.keys.Compute(key, func(expiry time.Time, loaded bool) (time.Time, xsync.ComputeOp) {
			if !loaded || now.Before(expiry) {
				return expiry, xsync.CancelOp
			}
			removed++
			return expiry, xsync.DeleteOp
		})
		return true
	})
	return removed
}

// ScheduleSweep runs Sweep on the cron spec. The caller stops the returned
// scheduler on shutdown.
func (s *MemoryStore) ScheduleSweep(spec string, log *slog.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			log.Debug("dedup sweep", slog.Int("removed", n), slog.Int("remaining", s.Len()))
		}
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
