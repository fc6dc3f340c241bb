package usecase

import (
	"context"
	"errors"
	"time"

	"kunooz-ads/internal/adapter/cache"
	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

// AdminUseCase manages placements and ads. Every successful mutation
// invalidates the render cache for the placement codes it touched.
type AdminUseCase struct {
	repo  port.AdminRepository
	cache *cache.RenderCache
	now   func() time.Time
}

var _ port.AdminUseCase = (*AdminUseCase)(nil)

// NewAdminUseCase creates the authoring usecase. A nil now uses time.Now.
func NewAdminUseCase(repo port.AdminRepository, rc *cache.RenderCache, now func() time.Time) *AdminUseCase {
	if now == nil {
		now = time.Now
	}
	return &AdminUseCase{repo: repo, cache: rc, now: now}
}

func (u *AdminUseCase) CreatePlacement(ctx context.Context, p *domain.Placement) error {
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return err
	}
	if err := u.repo.CreatePlacement(ctx, p); err != nil {
		return err
	}
	u.cache.InvalidatePlacements(ctx, p.Code)
	return nil
}

func (u *AdminUseCase) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	return u.repo.GetPlacement(ctx, id)
}

func (u *AdminUseCase) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	return u.repo.ListPlacements(ctx)
}

// UpdatePlacement stores p. The code may only change while no ads
// reference the placement; a rename invalidates both the old and the new
// code.
func (u *AdminUseCase) UpdatePlacement(ctx context.Context, p *domain.Placement) error {
	prev, err := u.repo.GetPlacement(ctx, p.ID)
	if err != nil {
		return err
	}
	p.ApplyDefaults()
	if err = p.Validate(); err != nil {
		return err
	}
	if p.Code != prev.Code {
		n, err := u.repo.CountAdsInPlacement(ctx, p.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			verr := &domain.ValidationError{}
			verr.Add("code", "code cannot change while advertisements reference it")
			return verr
		}
	}
	p.CreatedAt = prev.CreatedAt
	if err = u.repo.UpdatePlacement(ctx, p); err != nil {
		return err
	}
	u.cache.InvalidatePlacements(ctx, prev.Code, p.Code)
	return nil
}

// DeletePlacement removes a placement. A placement that still owns ads is
// only removed, together with its ads, when cascade is set; otherwise
// domain.ErrPlacementInUse is returned.
func (u *AdminUseCase) DeletePlacement(ctx context.Context, id int64, cascade bool) error {
	p, err := u.repo.GetPlacement(ctx, id)
	if err != nil {
		return err
	}
	n, err := u.repo.CountAdsInPlacement(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 && !cascade {
		return domain.ErrPlacementInUse
	}
	if err = u.repo.DeletePlacement(ctx, id); err != nil {
		return err
	}
	u.cache.InvalidatePlacements(ctx, p.Code)
	if n > 0 {
		u.cache.InvalidateStats(ctx)
	}
	return nil
}

func (u *AdminUseCase) CreateAd(ctx context.Context, ad *domain.Advertisement) error {
	if err := u.resolvePlacement(ctx, ad); err != nil {
		return err
	}
	ad.ApplyDefaults()
	if err := ad.ValidateNew(u.now()); err != nil {
		return err
	}
	ad.Impressions, ad.Clicks = 0, 0
	ad.LastImpression, ad.LastClick = nil, nil
	if err := u.repo.CreateAd(ctx, ad); err != nil {
		return err
	}
	u.invalidateAd(ctx, ad.Placement.Code)
	return nil
}

func (u *AdminUseCase) GetAd(ctx context.Context, id int64) (*domain.Advertisement, error) {
	return u.repo.GetAd(ctx, id)
}

func (u *AdminUseCase) ListAds(ctx context.Context, filter port.AdFilter) ([]domain.Advertisement, error) {
	return u.repo.ListAds(ctx, filter)
}

// UpdateAd stores the editable fields of ad. Identity and counters are
// taken from the stored ad. Moving an ad invalidates both placements.
func (u *AdminUseCase) UpdateAd(ctx context.Context, ad *domain.Advertisement) error {
	prev, err := u.repo.GetAd(ctx, ad.ID)
	if err != nil {
		return err
	}
	if err = u.resolvePlacement(ctx, ad); err != nil {
		return err
	}
	ad.UUID = prev.UUID
	ad.Impressions, ad.Clicks = prev.Impressions, prev.Clicks
	ad.LastImpression, ad.LastClick = prev.LastImpression, prev.LastClick
	ad.CreatedAt = prev.CreatedAt
	if ad.Priority == 0 {
		ad.Priority = domain.DefaultPriority
	}
	if err = ad.ValidateUpdate(prev, u.now()); err != nil {
		return err
	}
	if err = u.repo.UpdateAd(ctx, ad); err != nil {
		return err
	}
	u.invalidateAd(ctx, prev.Placement.Code, ad.Placement.Code)
	return nil
}

// ToggleAd flips the active flag and returns the updated ad.
func (u *AdminUseCase) ToggleAd(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := u.repo.GetAd(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = u.repo.SetAdActive(ctx, id, !ad.Active); err != nil {
		return nil, err
	}
	ad.Active = !ad.Active
	u.invalidateAd(ctx, ad.Placement.Code)
	return ad, nil
}

func (u *AdminUseCase) DeleteAd(ctx context.Context, id int64) error {
	ad, err := u.repo.GetAd(ctx, id)
	if err != nil {
		return err
	}
	if err = u.repo.DeleteAd(ctx, id); err != nil {
		return err
	}
	u.invalidateAd(ctx, ad.Placement.Code)
	return nil
}

// resolvePlacement loads the placement named by id or code into ad.
func (u *AdminUseCase) resolvePlacement(ctx context.Context, ad *domain.Advertisement) error {
	var (
		p   *domain.Placement
		err error
	)
	switch {
	case ad.Placement.ID != 0:
		p, err = u.repo.GetPlacement(ctx, ad.Placement.ID)
	case ad.Placement.Code != "":
		p, err = u.repo.GetPlacementByCode(ctx, ad.Placement.Code)
	default:
		verr := &domain.ValidationError{}
		verr.Add("placement", "placement is required")
		return verr
	}
	if errors.Is(err, domain.ErrNotFound) {
		verr := &domain.ValidationError{}
		verr.Add("placement", "placement does not exist")
		return verr
	}
	if err != nil {
		return err
	}
	ad.Placement = *p
	return nil
}

func (u *AdminUseCase) invalidateAd(ctx context.Context, codes ...string) {
	u.cache.InvalidatePlacements(ctx, codes...)
	u.cache.InvalidateStats(ctx)
}
