package port

import (
	"context"
	"time"

	"kunooz-ads/internal/core/domain"
)

// TrackingUseCase defines the serving operations exposed by the ad engine.
// It is the primary port used by the tracking endpoints.
type TrackingUseCase interface {
	// RenderPlacement returns the HTML fragment for the placement. A cache
	// hit returns the stored fragment without recording impressions.
	RenderPlacement(ctx context.Context, code string) (string, error)
	// RenderWidget returns markup for a random sample of count eligible ads.
	RenderWidget(ctx context.Context, code string, count int) (string, error)
	// TrackImpression processes an impression pixel request. Unknown ads
	// return domain.ErrNotFound.
	TrackImpression(ctx context.Context, adID int64, client domain.ClientContext) (domain.TrackOutcome, error)
	// TrackClick processes a click and returns the ad so the caller can
	// build the redirect. Unknown ads return domain.ErrNotFound.
	TrackClick(ctx context.Context, adID int64, client domain.ClientContext) (*domain.Advertisement, domain.TrackOutcome, error)
	// Feed returns the tiered selection for placement code (empty for all
	// placements).
	Feed(ctx context.Context, code string, count int) ([]domain.Advertisement, error)
}

// AdminUseCase manages ads and placements and keeps the render cache in
// step with every mutation.
type AdminUseCase interface {
	CreatePlacement(ctx context.Context, p *domain.Placement) error
	GetPlacement(ctx context.Context, id int64) (*domain.Placement, error)
	ListPlacements(ctx context.Context) ([]domain.Placement, error)
	UpdatePlacement(ctx context.Context, p *domain.Placement) error
	DeletePlacement(ctx context.Context, id int64, cascade bool) error

	CreateAd(ctx context.Context, ad *domain.Advertisement) error
	GetAd(ctx context.Context, id int64) (*domain.Advertisement, error)
	ListAds(ctx context.Context, filter AdFilter) ([]domain.Advertisement, error)
	UpdateAd(ctx context.Context, ad *domain.Advertisement) error
	ToggleAd(ctx context.Context, id int64) (*domain.Advertisement, error)
	DeleteAd(ctx context.Context, id int64) error
}

// StatsUseCase returns dashboard numbers and analytics.
type StatsUseCase interface {
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
	Analytics(ctx context.Context, from, to time.Time) (domain.Analytics, error)
}
