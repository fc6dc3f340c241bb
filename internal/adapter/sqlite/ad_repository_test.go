package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/db"
)

func newRepo(t *testing.T) *AdRepository {
	t.Helper()
	sqlDB, err := db.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewAdRepository(sqlDB)
}

func createPlacement(t *testing.T, repo *AdRepository, code string) *domain.Placement {
	t.Helper()
	p := &domain.Placement{Name: code, Code: code, Type: domain.PlacementSidebar, Active: true}
	p.ApplyDefaults()
	require.NoError(t, repo.CreatePlacement(context.Background(), p))
	return p
}

func createAd(t *testing.T, repo *AdRepository, p *domain.Placement, priority int, start, end time.Time, active bool) *domain.Advertisement {
	t.Helper()
	ad := &domain.Advertisement{
		Title:     "ad",
		Placement: *p,
		Content:   domain.Text{Body: "hello"},
		Link:      "https://example.com",
		StartDate: start,
		EndDate:   end,
		Active:    active,
		Priority:  priority,
	}
	ad.ApplyDefaults()
	require.NoError(t, repo.CreateAd(context.Background(), ad))
	return ad
}

func TestListEligible(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	header := createPlacement(t, repo, "header")
	footer := createPlacement(t, repo, "footer")

	low := createAd(t, repo, header, 1, now.Add(-time.Hour), now.Add(time.Hour), true)
	high := createAd(t, repo, header, 5, now.Add(-time.Hour), now.Add(time.Hour), true)
	createAd(t, repo, header, 9, now.Add(-time.Hour), now.Add(time.Hour), false)
	createAd(t, repo, header, 9, now.Add(time.Hour), now.Add(2*time.Hour), true)
	createAd(t, repo, header, 9, now.Add(-2*time.Hour), now.Add(-time.Hour), true)
	other := createAd(t, repo, footer, 1, now.Add(-time.Hour), now.Add(time.Hour), true)

	ads, err := repo.ListEligible(ctx, "header", now, 0)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, high.ID, ads[0].ID)
	assert.Equal(t, low.ID, ads[1].ID)
	assert.Equal(t, "header", ads[0].Placement.Code)
	assert.Equal(t, domain.Text{Body: "hello"}, ads[0].Content)

	ads, err = repo.ListEligible(ctx, "header", now, 1)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, high.ID, ads[0].ID)

	ads, err = repo.ListEligible(ctx, "", now, 0)
	require.NoError(t, err)
	assert.Len(t, ads, 3)
	assert.Contains(t, []int64{ads[0].ID, ads[1].ID, ads[2].ID}, other.ID)

	ads, err = repo.ListEligible(ctx, "missing", now, 0)
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestIncrementConcurrent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	ad := createAd(t, repo, createPlacement(t, repo, "sidebar"), 1, now.Add(-time.Hour), now.Add(time.Hour), true)

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.IncrementImpressions(ctx, ad.ID, now)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	got, err := repo.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Impressions)
	assert.Zero(t, got.Clicks)
	require.NotNil(t, got.LastImpression)
	assert.Equal(t, now.UnixMilli(), got.LastImpression.UnixMilli())
	assert.Nil(t, got.LastClick)
}

func TestIncrementGating(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	p := createPlacement(t, repo, "sidebar")
	inactive := createAd(t, repo, p, 1, now.Add(-time.Hour), now.Add(time.Hour), false)
	expired := createAd(t, repo, p, 1, now.Add(-2*time.Hour), now.Add(-time.Hour), true)

	for _, id := range []int64{inactive.ID, expired.ID} {
		ok, err := repo.IncrementClicks(ctx, id, now)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetAd(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, got.Clicks)
		assert.Nil(t, got.LastClick)
	}

	_, err := repo.IncrementClicks(ctx, 9999, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePlacementCascades(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	p := createPlacement(t, repo, "footer")
	ad := createAd(t, repo, p, 1, now.Add(-time.Hour), now.Add(time.Hour), true)

	n, err := repo.CountAdsInPlacement(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.DeletePlacement(ctx, p.ID))

	_, err = repo.GetAd(ctx, ad.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetPlacement(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeletePlacement(ctx, p.ID), domain.ErrNotFound)
}

func TestDuplicatePlacementCode(t *testing.T) {
	repo := newRepo(t)
	createPlacement(t, repo, "header")

	p := &domain.Placement{Name: "again", Code: "header", Type: domain.PlacementHeader}
	p.ApplyDefaults()
	err := repo.CreatePlacement(context.Background(), p)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "code")
}

func TestUpdateAndToggle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	p := createPlacement(t, repo, "header")
	ad := createAd(t, repo, p, 1, now.Add(-time.Hour), now.Add(time.Hour), true)

	ad.Title = "renamed"
	ad.Content = domain.Banner{ImageURL: "/media/a.png"}
	require.NoError(t, repo.UpdateAd(ctx, ad))
	require.NoError(t, repo.SetAdActive(ctx, ad.ID, false))

	got, err := repo.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, domain.AdTypeBanner, got.Type())
	assert.False(t, got.Active)

	active := false
	ads, err := repo.ListAds(ctx, port.AdFilter{Active: &active, Type: domain.AdTypeBanner})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, ad.ID, ads[0].ID)

	assert.ErrorIs(t, repo.SetAdActive(ctx, 4242, true), domain.ErrNotFound)
}

func TestStatsQueries(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	p := createPlacement(t, repo, "header")
	soon := createAd(t, repo, p, 1, now.Add(-time.Hour), now.Add(48*time.Hour), true)
	createAd(t, repo, p, 1, now.Add(-time.Hour), now.AddDate(0, 1, 0), true)
	createAd(t, repo, p, 1, now.Add(time.Hour), now.Add(2*time.Hour), true)

	for range 4 {
		_, err := repo.IncrementImpressions(ctx, soon.ID, now)
		require.NoError(t, err)
	}
	_, err := repo.IncrementClicks(ctx, soon.ID, now)
	require.NoError(t, err)

	stats, err := repo.DashboardTotals(ctx, now, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAds)
	assert.Equal(t, int64(4), stats.TotalImpressions)
	assert.Equal(t, int64(1), stats.TotalClicks)
	assert.Equal(t, int64(2), stats.ExpiringAds)

	active, err := repo.CountActive(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	within, err := repo.ListScheduledWithin(ctx, now.Add(-2*time.Hour), now.Add(3*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, within, 2)
}
