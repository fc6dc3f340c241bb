package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/telemetry"
)

// Entry lifetimes.
const (
	RenderTTL = 60 * time.Second
	StatsTTL  = 300 * time.Second
)

const (
	keyDashboard   = "stats:dashboard"
	keyActiveCount = "stats:active_count"
)

// RenderCache stores rendered placement fragments and dashboard numbers.
// Placement entries are keyed by a per-placement generation: bumping the
// generation makes every fragment of that placement unreachable at once.
//
// Backend failures are logged and treated as misses; the cache never fails
// a request.
type RenderCache struct {
	backend port.CacheBackend
	log     *slog.Logger
}

// NewRenderCache wraps backend.
func NewRenderCache(backend port.CacheBackend, log *slog.Logger) *RenderCache {
	return &RenderCache{backend: backend, log: log}
}

// Lookup is a placement cache probe. Gen must be passed back to Store so a
// fragment rendered before an invalidation is filed under the old
// generation.
type Lookup struct {
	Value string
	Gen   uint64
	Hit   bool
}

func renderKey(code string, gen uint64) string {
	return "render:" + code + ":g" + strconv.FormatUint(gen, 10)
}

func listKey(code string, gen uint64, count int) string {
	return fmt.Sprintf("list:%s:g%d:%d", code, gen, count)
}

// Render looks up the fragment for a placement.
func (c *RenderCache) Render(ctx context.Context, code string) Lookup {
	return c.lookup(ctx, "render", code, func(gen uint64) string { return renderKey(code, gen) })
}

// StoreRender saves a fragment under the generation returned by Render.
func (c *RenderCache) StoreRender(ctx context.Context, code string, gen uint64, html string) {
	c.set(ctx, renderKey(code, gen), []byte(html), RenderTTL)
}

// List looks up a widget fragment for a placement and count.
func (c *RenderCache) List(ctx context.Context, code string, count int) Lookup {
	return c.lookup(ctx, "list", code, func(gen uint64) string { return listKey(code, gen, count) })
}

// StoreList saves a widget fragment under the generation returned by List.
func (c *RenderCache) StoreList(ctx context.Context, code string, count int, gen uint64, html string) {
	c.set(ctx, listKey(code, gen, count), []byte(html), RenderTTL)
}

func (c *RenderCache) lookup(ctx context.Context, kind, code string, key func(uint64) string) Lookup {
	gen, err := c.backend.Generation(ctx, code)
	if err != nil {
		c.log.WarnContext(ctx, "cache generation lookup failed", slog.String("placement", code), slog.Any("error", err))
		telemetry.CacheRequests.WithLabelValues(kind, "error").Inc()
		return Lookup{}
	}
	v, ok, err := c.backend.Get(ctx, key(gen))
	switch {
	case err != nil:
		c.log.WarnContext(ctx, "cache get failed", slog.String("placement", code), slog.Any("error", err))
		telemetry.CacheRequests.WithLabelValues(kind, "error").Inc()
		return Lookup{Gen: gen}
	case !ok:
		telemetry.CacheRequests.WithLabelValues(kind, "miss").Inc()
		return Lookup{Gen: gen}
	}
	telemetry.CacheRequests.WithLabelValues(kind, "hit").Inc()
	return Lookup{Value: string(v), Gen: gen, Hit: true}
}

// Dashboard returns the cached dashboard totals.
func (c *RenderCache) Dashboard(ctx context.Context) (domain.DashboardStats, bool) {
	var s domain.DashboardStats
	return s, c.getJSON(ctx, keyDashboard, &s)
}

// StoreDashboard caches dashboard totals.
func (c *RenderCache) StoreDashboard(ctx context.Context, s domain.DashboardStats) {
	c.setJSON(ctx, keyDashboard, s)
}

// ActiveCount returns the cached number of servable ads.
func (c *RenderCache) ActiveCount(ctx context.Context) (int64, bool) {
	var n int64
	return n, c.getJSON(ctx, keyActiveCount, &n)
}

// StoreActiveCount caches the number of servable ads.
func (c *RenderCache) StoreActiveCount(ctx context.Context, n int64) {
	c.setJSON(ctx, keyActiveCount, n)
}

// InvalidatePlacements bumps the generation of every code given and drops
// the cached active count. Empty codes are skipped.
func (c *RenderCache) InvalidatePlacements(ctx context.Context, codes ...string) {
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		if _, err := c.backend.BumpGeneration(ctx, code); err != nil {
			c.log.ErrorContext(ctx, "cache invalidation failed", slog.String("placement", code), slog.Any("error", err))
		}
	}
	if err := c.backend.Delete(ctx, keyActiveCount); err != nil {
		c.log.ErrorContext(ctx, "cache delete failed", slog.String("key", keyActiveCount), slog.Any("error", err))
	}
}

// InvalidateStats drops the cached dashboard numbers.
func (c *RenderCache) InvalidateStats(ctx context.Context) {
	for _, key := range []string{keyDashboard, keyActiveCount} {
		if err := c.backend.Delete(ctx, key); err != nil {
			c.log.ErrorContext(ctx, "cache delete failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

func (c *RenderCache) getJSON(ctx context.Context, key string, dst any) bool {
	v, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.Any("error", err))
		telemetry.CacheRequests.WithLabelValues("stats", "error").Inc()
		return false
	}
	if !ok {
		telemetry.CacheRequests.WithLabelValues("stats", "miss").Inc()
		return false
	}
	if err = json.Unmarshal(v, dst); err != nil {
		c.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	telemetry.CacheRequests.WithLabelValues("stats", "hit").Inc()
	return true
}

func (c *RenderCache) setJSON(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.ErrorContext(ctx, "cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	c.set(ctx, key, b, StatsTTL)
}

func (c *RenderCache) set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.backend.Set(ctx, key, value, ttl); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}
