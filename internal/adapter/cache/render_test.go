package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
)

func newCache(t *testing.T) *RenderCache {
	t.Helper()
	backend, err := NewMemoryBackend(1000)
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	return NewRenderCache(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRenderRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	l := c.Render(ctx, "header")
	require.False(t, l.Hit)
	c.StoreRender(ctx, "header", l.Gen, "<div>ad</div>")

	l = c.Render(ctx, "header")
	assert.True(t, l.Hit)
	assert.Equal(t, "<div>ad</div>", l.Value)

	assert.False(t, c.Render(ctx, "footer").Hit)
}

func TestInvalidatePlacements(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	r := c.Render(ctx, "header")
	c.StoreRender(ctx, "header", r.Gen, "old")
	l := c.List(ctx, "header", 3)
	c.StoreList(ctx, "header", 3, l.Gen, "old list")
	f := c.Render(ctx, "footer")
	c.StoreRender(ctx, "footer", f.Gen, "footer")
	c.StoreActiveCount(ctx, 7)

	c.InvalidatePlacements(ctx, "header", "", "header")

	_, ok := c.ActiveCount(ctx)
	assert.False(t, ok)

	assert.False(t, c.Render(ctx, "header").Hit)
	assert.False(t, c.List(ctx, "header", 3).Hit)
	assert.True(t, c.Render(ctx, "footer").Hit)
}

func TestStoreAfterInvalidationIsUnreachable(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	stale := c.Render(ctx, "sidebar")
	c.InvalidatePlacements(ctx, "sidebar")
	c.StoreRender(ctx, "sidebar", stale.Gen, "rendered before the edit")

	assert.False(t, c.Render(ctx, "sidebar").Hit)
}

func TestListKeyedByCount(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	l := c.List(ctx, "header", 2)
	c.StoreList(ctx, "header", 2, l.Gen, "two")

	assert.False(t, c.List(ctx, "header", 3).Hit)
	got := c.List(ctx, "header", 2)
	assert.True(t, got.Hit)
	assert.Equal(t, "two", got.Value)
}

func TestStatsEntries(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	_, ok := c.Dashboard(ctx)
	require.False(t, ok)

	want := domain.DashboardStats{TotalAds: 4, ActiveAds: 2, TotalImpressions: 10, TotalClicks: 1, CTR: 10}
	c.StoreDashboard(ctx, want)
	c.StoreActiveCount(ctx, 2)

	got, ok := c.Dashboard(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
	n, ok := c.ActiveCount(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(2), n)

	c.InvalidateStats(ctx)
	_, ok = c.Dashboard(ctx)
	assert.False(t, ok)
	_, ok = c.ActiveCount(ctx)
	assert.False(t, ok)
}

func TestMemoryBackendExpiry(t *testing.T) {
	ctx := context.Background()
	backend, err := NewMemoryBackend(10)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Set(ctx, "k", []byte("v"), 50*time.Millisecond))
	_, ok, _ := backend.Get(ctx, "k")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok, _ := backend.Get(ctx, "k")
		return !ok
	}, 3*time.Second, 20*time.Millisecond)
}

type brokenBackend struct{}

var errBroken = errors.New("backend down")

func (brokenBackend) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errBroken }
func (brokenBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errBroken
}
func (brokenBackend) Delete(context.Context, string) error                  { return errBroken }
func (brokenBackend) Generation(context.Context, string) (uint64, error)     { return 0, errBroken }
func (brokenBackend) BumpGeneration(context.Context, string) (uint64, error) { return 0, errBroken }

func TestBackendFailuresAreMisses(t *testing.T) {
	ctx := context.Background()
	c := NewRenderCache(brokenBackend{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	l := c.Render(ctx, "header")
	assert.False(t, l.Hit)
	c.StoreRender(ctx, "header", l.Gen, "x")
	c.InvalidatePlacements(ctx, "header")
	c.InvalidateStats(ctx)
	_, ok := c.Dashboard(ctx)
	assert.False(t, ok)
}
