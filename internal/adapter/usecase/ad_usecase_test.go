package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/adapter/cache"
	"kunooz-ads/internal/adapter/dedup"
	"kunooz-ads/internal/adapter/markup"
	"kunooz-ads/internal/adapter/sqlite"
	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/core/port/mocks"
	"kunooz-ads/internal/db"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRenderCache(t *testing.T) *cache.RenderCache {
	t.Helper()
	backend, err := cache.NewMemoryBackend(1000)
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	return cache.NewRenderCache(backend, discardLogger())
}

func newDedup() *dedup.Deduplicator {
	return dedup.New(dedup.NewMemoryStore(fixedNow), true, discardLogger())
}

func testAd(id int64, priority int, code string) domain.Advertisement {
	return domain.Advertisement{
		ID:        id,
		UUID:      uuid.New(),
		Title:     fmt.Sprintf("ad %d", id),
		Placement: domain.Placement{ID: 1, Code: code, Width: 300, Height: 250},
		Content:   domain.Text{Body: fmt.Sprintf("body %d", id)},
		Link:      "https://example.com/landing",
		StartDate: testNow.Add(-time.Hour),
		EndDate:   testNow.Add(time.Hour),
		Active:    true,
		Priority:  priority,
	}
}

func newTrackingUseCase(t *testing.T, repo port.AdRepository, opts ...Option) *AdUseCase {
	t.Helper()
	opts = append([]Option{WithClock(fixedNow), WithLogger(discardLogger())}, opts...)
	return NewAdUseCase(repo, newRenderCache(t), newDedup(), opts...)
}

// TestRenderPlacementCached ensures a cached fragment is served without
// recording impressions again.
func TestRenderPlacementCached(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ads := []domain.Advertisement{testAd(1, 5, "header"), testAd(2, 1, "header")}

	repo.EXPECT().
		ListEligible(mock.Anything, "header", testNow, PlacementAdLimit).
		Return(ads, nil).
		Once()
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(1), testNow).Return(true, nil).Once()
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(2), testNow).Return(true, nil).Once()

	svc := newTrackingUseCase(t, repo)

	first, err := svc.RenderPlacement(context.Background(), "header")
	require.NoError(t, err)
	second, err := svc.RenderPlacement(context.Background(), "header")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "body 1")
	assert.Contains(t, first, "/ads/impression/2")
}

func TestRenderPlacementEmpty(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		ListEligible(mock.Anything, "nowhere", testNow, PlacementAdLimit).
		Return(nil, nil)

	html, err := newTrackingUseCase(t, repo).RenderPlacement(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, markup.EmptyPlacement, html)
}

func TestRenderPlacementStoreFault(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		ListEligible(mock.Anything, "header", testNow, PlacementAdLimit).
		Return(nil, errors.New("connection refused"))

	_, err := newTrackingUseCase(t, repo).RenderPlacement(context.Background(), "header")
	assert.Error(t, err)
}

// TestRenderPlacementCountFault ensures a failing impression update fails
// the render and leaves nothing cached, so the next request retries.
func TestRenderPlacementCountFault(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ads := []domain.Advertisement{testAd(1, 5, "header"), testAd(2, 1, "header")}

	repo.EXPECT().
		ListEligible(mock.Anything, "header", testNow, PlacementAdLimit).
		Return(ads, nil).
		Twice()
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(1), testNow).Return(false, context.DeadlineExceeded).Once()
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(1), testNow).Return(true, nil).Once()
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(2), testNow).Return(true, nil).Once()

	svc := newTrackingUseCase(t, repo)

	_, err := svc.RenderPlacement(context.Background(), "header")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	html, err := svc.RenderPlacement(context.Background(), "header")
	require.NoError(t, err)
	assert.Contains(t, html, "body 1")
}

func TestRenderPlacementSkipsExpiredSinceListing(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ads := []domain.Advertisement{testAd(1, 5, "header"), testAd(2, 1, "header")}

	repo.EXPECT().ListEligible(mock.Anything, "header", testNow, PlacementAdLimit).Return(ads, nil)
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(1), testNow).Return(false, nil)
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(2), testNow).Return(false, domain.ErrNotFound)

	html, err := newTrackingUseCase(t, repo).RenderPlacement(context.Background(), "header")
	require.NoError(t, err)
	assert.Contains(t, html, "body 2")
}

// TestStaleRowsNotServed ensures rows the store reports as eligible are
// re-checked against the request time before they are served.
func TestStaleRowsNotServed(t *testing.T) {
	expired := testAd(9, 5, "header")
	expired.EndDate = testNow.Add(-time.Minute)
	switchedOff := testAd(8, 5, "header")
	switchedOff.Active = false
	rows := func() []domain.Advertisement {
		return []domain.Advertisement{expired, switchedOff, testAd(1, 1, "header")}
	}

	t.Run("render", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().ListEligible(mock.Anything, "header", testNow, PlacementAdLimit).Return(rows(), nil)
		repo.EXPECT().IncrementImpressions(mock.Anything, int64(1), testNow).Return(true, nil).Once()

		html, err := newTrackingUseCase(t, repo).RenderPlacement(context.Background(), "header")
		require.NoError(t, err)
		assert.Contains(t, html, "body 1")
		assert.NotContains(t, html, "body 9")
		assert.NotContains(t, html, "body 8")
	})

	t.Run("widget", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().ListEligible(mock.Anything, "header", testNow, 0).Return(rows(), nil)

		html, err := newTrackingUseCase(t, repo).RenderWidget(context.Background(), "header", 10)
		require.NoError(t, err)
		assert.Contains(t, html, "/ads/click/1")
		assert.NotContains(t, html, "/ads/click/9")
		assert.NotContains(t, html, "/ads/click/8")
	})

	t.Run("feed", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().ListEligible(mock.Anything, "header", testNow, 0).Return(rows(), nil)

		got, err := newTrackingUseCase(t, repo).Feed(context.Background(), "header", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})
}

func TestTrackImpressionDeduplicated(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	pub := mocks.NewMockEventPublisher(t)
	ad := testAd(7, 1, "sidebar")

	repo.EXPECT().GetAd(mock.Anything, int64(7)).Return(&ad, nil)
	repo.EXPECT().IncrementImpressions(mock.Anything, int64(7), testNow).Return(true, nil).Once()
	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(ev domain.TrackingEvent) bool {
			return ev.Type == domain.EventImpression && ev.AdID == 7 && ev.PlacementCode == "sidebar"
		})).
		Return(nil).
		Once()

	svc := newTrackingUseCase(t, repo, WithPublisher(pub))
	client := domain.ClientContext{RemoteAddr: "10.0.0.1", UserAgent: "UA"}

	outcome, err := svc.TrackImpression(context.Background(), 7, client)
	require.NoError(t, err)
	assert.Equal(t, domain.Recorded, outcome)

	outcome, err = svc.TrackImpression(context.Background(), 7, client)
	require.NoError(t, err)
	assert.Equal(t, domain.Duplicate, outcome)
}

func TestTrackImpressionInactive(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ad := testAd(3, 1, "sidebar")
	ad.Active = false
	repo.EXPECT().GetAd(mock.Anything, int64(3)).Return(&ad, nil)

	outcome, err := newTrackingUseCase(t, repo).TrackImpression(context.Background(), 3, domain.ClientContext{})
	require.NoError(t, err)
	assert.Equal(t, domain.Inactive, outcome)
}

func TestTrackImpressionNotFound(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().GetAd(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := newTrackingUseCase(t, repo).TrackImpression(context.Background(), 99, domain.ClientContext{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrackClick(t *testing.T) {
	ad := testAd(4, 1, "footer")
	client := domain.ClientContext{RemoteAddr: "10.0.0.9", UserAgent: "UA"}

	t.Run("recorded", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().GetAd(mock.Anything, int64(4)).Return(&ad, nil)
		repo.EXPECT().IncrementClicks(mock.Anything, int64(4), testNow).Return(true, nil)

		got, outcome, err := newTrackingUseCase(t, repo).TrackClick(context.Background(), 4, client)
		require.NoError(t, err)
		assert.Equal(t, domain.Recorded, outcome)
		assert.Equal(t, ad.Link, got.Link)
	})

	t.Run("deactivated before update", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().GetAd(mock.Anything, int64(4)).Return(&ad, nil)
		repo.EXPECT().IncrementClicks(mock.Anything, int64(4), testNow).Return(false, nil)

		_, outcome, err := newTrackingUseCase(t, repo).TrackClick(context.Background(), 4, client)
		require.NoError(t, err)
		assert.Equal(t, domain.Inactive, outcome)
	})

	t.Run("fault", func(t *testing.T) {
		repo := mocks.NewMockAdRepository(t)
		repo.EXPECT().GetAd(mock.Anything, int64(4)).Return(&ad, nil)
		repo.EXPECT().IncrementClicks(mock.Anything, int64(4), testNow).Return(false, context.DeadlineExceeded)

		_, _, err := newTrackingUseCase(t, repo).TrackClick(context.Background(), 4, client)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestFeedUsesTieredSelection(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ads := []domain.Advertisement{
		testAd(1, 5, "header"), testAd(2, 4, "header"), testAd(3, 3, "header"),
		testAd(4, 2, "header"), testAd(5, 1, "header"),
	}
	repo.EXPECT().ListEligible(mock.Anything, "header", testNow, 0).Return(ads, nil)

	got, err := newTrackingUseCase(t, repo).Feed(context.Background(), "header", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestRenderWidgetCachedPerCount(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ads := []domain.Advertisement{testAd(1, 1, "sidebar"), testAd(2, 1, "sidebar"), testAd(3, 1, "sidebar")}
	repo.EXPECT().ListEligible(mock.Anything, "sidebar", testNow, 0).Return(ads, nil).Twice()

	svc := newTrackingUseCase(t, repo)
	ctx := context.Background()

	two, err := svc.RenderWidget(ctx, "sidebar", 2)
	require.NoError(t, err)
	again, err := svc.RenderWidget(ctx, "sidebar", 2)
	require.NoError(t, err)
	assert.Equal(t, two, again)

	all, err := svc.RenderWidget(ctx, "sidebar", 0)
	require.NoError(t, err)
	for _, id := range []string{"/ads/click/1", "/ads/click/2", "/ads/click/3"} {
		assert.Contains(t, all, id)
	}
}

// TestConcurrentImpressions ensures concurrent impressions from distinct
// clients are all counted against a real store.
func TestConcurrentImpressions(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	repo := sqlite.NewAdRepository(sqlDB)

	p := &domain.Placement{Name: "Sidebar", Code: "sidebar", Type: domain.PlacementSidebar, Active: true}
	p.ApplyDefaults()
	require.NoError(t, repo.CreatePlacement(ctx, p))
	ad := testAd(0, 1, "sidebar")
	ad.Placement = *p
	require.NoError(t, repo.CreateAd(ctx, &ad))

	svc := newTrackingUseCase(t, repo)

	const clients = 40
	var wg sync.WaitGroup
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := domain.ClientContext{RemoteAddr: fmt.Sprintf("10.0.0.%d", i), UserAgent: "UA"}
			outcome, err := svc.TrackImpression(ctx, ad.ID, client)
			assert.NoError(t, err)
			assert.Equal(t, domain.Recorded, outcome)
		}()
	}
	wg.Wait()

	got, err := repo.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	if got.Impressions != clients {
		t.Fatalf("unexpected impressions after concurrency: got %d, want %d", got.Impressions, clients)
	}
}
