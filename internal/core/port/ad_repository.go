package port

import (
	"context"
	"time"

	"kunooz-ads/internal/core/domain"
)

// AdRepository defines the persistence needed on the serving path. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and apply counter increments atomically.
type AdRepository interface {
	// GetAd returns the ad with its placement, or domain.ErrNotFound.
	GetAd(ctx context.Context, id int64) (*domain.Advertisement, error)
	// ListEligible returns ads of the placement with the given code that
	// are active at now, ordered by priority descending. An empty code
	// matches every placement. Unknown codes yield an empty slice.
	ListEligible(ctx context.Context, placementCode string, now time.Time, limit int) ([]domain.Advertisement, error)
	// IncrementImpressions adds one impression and stamps last_impression
	// when the ad is active at now. It reports whether the row was
	// updated and returns domain.ErrNotFound for unknown ids.
	IncrementImpressions(ctx context.Context, id int64, now time.Time) (bool, error)
	// IncrementClicks is the click counterpart of IncrementImpressions.
	IncrementClicks(ctx context.Context, id int64, now time.Time) (bool, error)
}

// AdminRepository is the authoring side of the store.
type AdminRepository interface {
	CreatePlacement(ctx context.Context, p *domain.Placement) error
	GetPlacement(ctx context.Context, id int64) (*domain.Placement, error)
	GetPlacementByCode(ctx context.Context, code string) (*domain.Placement, error)
	ListPlacements(ctx context.Context) ([]domain.Placement, error)
	UpdatePlacement(ctx context.Context, p *domain.Placement) error
	// DeletePlacement removes the placement and, through the foreign key,
	// every ad bound to it.
	DeletePlacement(ctx context.Context, id int64) error
	CountAdsInPlacement(ctx context.Context, placementID int64) (int64, error)

	CreateAd(ctx context.Context, ad *domain.Advertisement) error
	GetAd(ctx context.Context, id int64) (*domain.Advertisement, error)
	ListAds(ctx context.Context, filter AdFilter) ([]domain.Advertisement, error)
	UpdateAd(ctx context.Context, ad *domain.Advertisement) error
	SetAdActive(ctx context.Context, id int64, active bool) error
	DeleteAd(ctx context.Context, id int64) error
}

// StatsRepository serves dashboard aggregates.
type StatsRepository interface {
	// DashboardTotals returns ad count, impression and click sums and the
	// number of active ads ending within [now, until].
	DashboardTotals(ctx context.Context, now, until time.Time) (domain.DashboardStats, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	// ListScheduledWithin returns ads whose window lies within [from, to].
	ListScheduledWithin(ctx context.Context, from, to time.Time) ([]domain.Advertisement, error)
}

// AdFilter narrows ListAds.
type AdFilter struct {
	PlacementCode string
	Type          domain.AdType
	// Active filters on the stored flag when non-nil.
	Active *bool
	Limit  int
	Offset int
}
