package dedup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImpressionWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	d := New(NewMemoryStore(clock.Now), true, discard())
	ctx := context.Background()

	key := domain.ClientContext{RemoteAddr: "10.0.0.1", UserAgent: "UA"}.Key(42)

	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, key))
	assert.False(t, d.ShouldRecord(ctx, domain.EventImpression, key))

	clock.Advance(59 * time.Minute)
	assert.False(t, d.ShouldRecord(ctx, domain.EventImpression, key))

	clock.Advance(time.Minute)
	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, key))
}

func TestClickWindowIsIndependent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	d := New(NewMemoryStore(clock.Now), true, discard())
	ctx := context.Background()
	key := domain.ClientContext{RemoteAddr: "10.0.0.1", UserAgent: "UA"}.Key(42)

	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, key))
	assert.True(t, d.ShouldRecord(ctx, domain.EventClick, key))
	assert.False(t, d.ShouldRecord(ctx, domain.EventClick, key))

	clock.Advance(5 * time.Minute)
	assert.True(t, d.ShouldRecord(ctx, domain.EventClick, key))
	assert.False(t, d.ShouldRecord(ctx, domain.EventImpression, key))
}

func TestDifferentClientsAreIndependent(t *testing.T) {
	d := New(NewMemoryStore(nil), true, discard())
	ctx := context.Background()

	a := domain.ClientContext{RemoteAddr: "10.0.0.1", UserAgent: "UA"}
	b := domain.ClientContext{RemoteAddr: "10.0.0.2", UserAgent: "UA"}

	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, a.Key(1)))
	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, b.Key(1)))
	assert.True(t, d.ShouldRecord(ctx, domain.EventImpression, a.Key(2)))
}

func TestConcurrentMarkOnce(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.MarkIfAbsent(ctx, "dedup:click:k", time.Minute)
			assert.NoError(t, err)
			if ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), winners.Load())
}

func TestSweep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()

	_, err := store.MarkIfAbsent(ctx, "short", time.Minute)
	require.NoError(t, err)
	_, err = store.MarkIfAbsent(ctx, "long", time.Hour)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestScheduleSweepRejectsBadSpec(t *testing.T) {
	_, err := NewMemoryStore(nil).ScheduleSweep("not a schedule", discard())
	assert.Error(t, err)
}

func TestStoreFailurePolicy(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewMockDedupStore(t)
	store.EXPECT().
		MarkIfAbsent(mock.Anything, "dedup:impression:k", time.Hour).
		Return(false, errors.New("redis down"))

	assert.True(t, New(store, true, discard()).ShouldRecord(ctx, domain.EventImpression, "k"))
	assert.False(t, New(store, false, discard()).ShouldRecord(ctx, domain.EventImpression, "k"))
}
