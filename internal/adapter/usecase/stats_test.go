package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port/mocks"
)

func TestDashboardCached(t *testing.T) {
	repo := mocks.NewMockStatsRepository(t)
	repo.EXPECT().
		DashboardTotals(mock.Anything, testNow, testNow.Add(ExpiringWithin)).
		Return(domain.DashboardStats{TotalAds: 5, TotalImpressions: 3, TotalClicks: 1, ExpiringAds: 2}, nil).
		Once()
	repo.EXPECT().CountActive(mock.Anything, testNow).Return(int64(4), nil).Once()

	svc := NewStatsUseCase(repo, newRenderCache(t), fixedNow)

	for range 2 {
		stats, err := svc.Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalAds)
		assert.Equal(t, int64(4), stats.ActiveAds)
		assert.Equal(t, int64(2), stats.ExpiringAds)
		assert.Equal(t, 33.33, stats.CTR)
	}
}

func TestAnalyticsBreakdown(t *testing.T) {
	repo := mocks.NewMockStatsRepository(t)

	banner := testAd(1, 1, "header")
	banner.Content = domain.Banner{ImageURL: "/a.png"}
	banner.Impressions, banner.Clicks = 100, 4
	text := testAd(2, 1, "header")
	text.Impressions, text.Clicks = 50, 1
	text.Active = false
	footer := testAd(3, 1, "footer")
	footer.Impressions = 10

	from, to := testNow.AddDate(0, 0, -30), testNow
	repo.EXPECT().ListScheduledWithin(mock.Anything, from, to).
		Return([]domain.Advertisement{banner, text, footer}, nil)

	got, err := NewStatsUseCase(repo, newRenderCache(t), fixedNow).Analytics(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.TotalAds)
	assert.Equal(t, int64(2), got.ActiveAds)
	assert.Equal(t, int64(160), got.TotalImpressions)
	assert.Equal(t, int64(5), got.TotalClicks)
	assert.Equal(t, domain.Totals{Count: 1, Impressions: 100, Clicks: 4}, got.ByType[domain.AdTypeBanner])
	assert.Equal(t, domain.Totals{Count: 2, Impressions: 60, Clicks: 1}, got.ByType[domain.AdTypeText])
	assert.Equal(t, domain.Totals{Count: 2, Impressions: 150, Clicks: 5}, got.ByPlacement["header"])
}
