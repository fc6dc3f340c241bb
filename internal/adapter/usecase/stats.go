package usecase

import (
	"context"
	"time"

	"kunooz-ads/internal/adapter/cache"
	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

// ExpiringWithin is the horizon for the dashboard's expiring ads count.
const ExpiringWithin = 7 * 24 * time.Hour

// StatsUseCase computes dashboard numbers and analytics.
type StatsUseCase struct {
	repo  port.StatsRepository
	cache *cache.RenderCache
	now   func() time.Time
}

var _ port.StatsUseCase = (*StatsUseCase)(nil)

// NewStatsUseCase creates the stats usecase. A nil now uses time.Now.
func NewStatsUseCase(repo port.StatsRepository, rc *cache.RenderCache, now func() time.Time) *StatsUseCase {
	if now == nil {
		now = time.Now
	}
	return &StatsUseCase{repo: repo, cache: rc, now: now}
}

// Dashboard returns aggregate totals. Totals and the active count are
// cached separately for cache.StatsTTL.
func (u *StatsUseCase) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	stats, ok := u.cache.Dashboard(ctx)
	if !ok {
		now := u.now()
		var err error
		stats, err = u.repo.DashboardTotals(ctx, now, now.Add(ExpiringWithin))
		if err != nil {
			return domain.DashboardStats{}, err
		}
		stats.CTR = domain.CTRPercent(stats.TotalClicks, stats.TotalImpressions)
		u.cache.StoreDashboard(ctx, stats)
	}

	active, ok := u.cache.ActiveCount(ctx)
	if !ok {
		var err error
		active, err = u.repo.CountActive(ctx, u.now())
		if err != nil {
			return domain.DashboardStats{}, err
		}
		u.cache.StoreActiveCount(ctx, active)
	}
	stats.ActiveAds = active
	return stats, nil
}

// Analytics breaks down the ads whose window lies within [from, to].
func (u *StatsUseCase) Analytics(ctx context.Context, from, to time.Time) (domain.Analytics, error) {
	ads, err := u.repo.ListScheduledWithin(ctx, from, to)
	if err != nil {
		return domain.Analytics{}, err
	}

	now := u.now()
	out := domain.Analytics{
		From:        from,
		To:          to,
		ByType:      make(map[domain.AdType]domain.Totals),
		ByPlacement: make(map[string]domain.Totals),
	}
	for i := range ads {
		ad := &ads[i]
		out.TotalAds++
		if ad.IsActive(now) {
			out.ActiveAds++
		}
		out.TotalImpressions += ad.Impressions
		out.TotalClicks += ad.Clicks

		out.ByType[ad.Type()] = addTotals(out.ByType[ad.Type()], ad)
		out.ByPlacement[ad.Placement.Code] = addTotals(out.ByPlacement[ad.Placement.Code], ad)
	}
	return out, nil
}

func addTotals(t domain.Totals, ad *domain.Advertisement) domain.Totals {
	t.Count++
	t.Impressions += ad.Impressions
	t.Clicks += ad.Clicks
	return t
}
