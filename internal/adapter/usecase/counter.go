package usecase

import (
	"context"
	"time"

	"kunooz-ads/internal/core/port"
)

// Counter applies impression and click increments. Each increment is a
// single conditional statement in the store, so concurrent requests never
// lose updates and faults never leave a partial write.
type Counter struct {
	repo port.AdRepository
	now  func() time.Time
}

// NewCounter returns a Counter stamping events with now.
func NewCounter(repo port.AdRepository, now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	return &Counter{repo: repo, now: now}
}

// RecordImpression adds one impression when the ad is currently active.
// applied is false for an inactive ad; unknown ads return
// domain.ErrNotFound.
func (c *Counter) RecordImpression(ctx context.Context, adID int64) (applied bool, err error) {
	return c.repo.IncrementImpressions(ctx, adID, c.now())
}

// RecordClick is the click counterpart of RecordImpression.
func (c *Counter) RecordClick(ctx context.Context, adID int64) (applied bool, err error) {
	return c.repo.IncrementClicks(ctx, adID, c.now())
}
