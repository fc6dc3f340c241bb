package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"kunooz-ads/internal/adapter/cache"
	"kunooz-ads/internal/adapter/dedup"
	"kunooz-ads/internal/adapter/markup"
	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/core/selection"
	"kunooz-ads/internal/telemetry"
)

// PlacementAdLimit is the number of ads rendered into a placement fragment.
const PlacementAdLimit = 5

// AdUseCase serves placements and processes tracking events. It
// orchestrates the store, render cache, deduplicator and event publisher
// to implement the TrackingUseCase port.
type AdUseCase struct {
	repo      port.AdRepository
	counter   *Counter
	cache     *cache.RenderCache
	dedup     *dedup.Deduplicator
	selector  *selection.Selector
	renderer  *markup.Renderer
	publisher port.EventPublisher
	tracer    trace.Tracer
	log       *slog.Logger
	now       func() time.Time
}

var _ port.TrackingUseCase = (*AdUseCase)(nil)

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *AdUseCase) { u.now = now }
}

// WithSelector replaces the default randomly seeded selector.
func WithSelector(s *selection.Selector) Option {
	return func(u *AdUseCase) { u.selector = s }
}

// WithPublisher forwards recorded events to p.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *AdUseCase) { u.publisher = p }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(u *AdUseCase) { u.log = l }
}

// NewAdUseCase creates the tracking usecase.
func NewAdUseCase(repo port.AdRepository, rc *cache.RenderCache, dd *dedup.Deduplicator, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		repo:     repo,
		cache:    rc,
		dedup:    dd,
		selector: selection.NewSelector(nil),
		renderer: markup.New(""),
		tracer:   telemetry.Tracer(),
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.counter = NewCounter(repo, u.now)
	return u
}

// RenderPlacement returns the fragment for a placement: up to
// PlacementAdLimit eligible ads by priority, each counted as an
// impression. A cached fragment is returned as is, without counting. A
// store fault while counting fails the render and nothing is cached.
func (u *AdUseCase) RenderPlacement(ctx context.Context, code string) (html string, err error) {
	ctx, span := u.tracer.Start(ctx, "ads.RenderPlacement", trace.WithAttributes(attribute.String("ads.placement", code)))
	defer func() { endSpan(span, err) }()

	lookup := u.cache.Render(ctx, code)
	if lookup.Hit {
		span.SetAttributes(attribute.Bool("ads.cache_hit", true))
		return lookup.Value, nil
	}

	ads, err := u.eligible(ctx, code, PlacementAdLimit)
	if err != nil {
		return "", err
	}
	for i := range ads {
		applied, err := u.counter.RecordImpression(ctx, ads[i].ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		if !applied {
			// Expired, switched off or deleted since the listing.
			u.log.DebugContext(ctx, "render impression skipped", slog.Int64("ad_id", ads[i].ID))
			continue
		}
		telemetry.TrackingEvents.WithLabelValues(string(domain.EventImpression), "render").Inc()
	}

	html, err = u.renderer.Placement(ads)
	if err != nil {
		return "", err
	}
	u.cache.StoreRender(ctx, code, lookup.Gen, html)
	return html, nil
}

// RenderWidget returns markup for a random sample of eligible ads. The
// markup's pixels count the impressions.
func (u *AdUseCase) RenderWidget(ctx context.Context, code string, count int) (html string, err error) {
	ctx, span := u.tracer.Start(ctx, "ads.RenderWidget", trace.WithAttributes(attribute.String("ads.placement", code)))
	defer func() { endSpan(span, err) }()

	count = requestedCount(count)
	lookup := u.cache.List(ctx, code, count)
	if lookup.Hit {
		return lookup.Value, nil
	}

	ads, err := u.eligible(ctx, code, 0)
	if err != nil {
		return "", err
	}
	html, err = u.renderer.Placement(u.selector.Sample(ads, count))
	if err != nil {
		return "", err
	}
	u.cache.StoreList(ctx, code, count, lookup.Gen, html)
	return html, nil
}

// Feed returns the tiered selection of eligible ads.
func (u *AdUseCase) Feed(ctx context.Context, code string, count int) (ads []domain.Advertisement, err error) {
	ctx, span := u.tracer.Start(ctx, "ads.Feed", trace.WithAttributes(attribute.String("ads.placement", code)))
	defer func() { endSpan(span, err) }()

	eligible, err := u.eligible(ctx, code, 0)
	if err != nil {
		return nil, err
	}
	return u.selector.Select(eligible, requestedCount(count)), nil
}

// eligible lists the placement's ads and re-checks the window against the
// same instant, so stale store rows are never served.
func (u *AdUseCase) eligible(ctx context.Context, code string, limit int) ([]domain.Advertisement, error) {
	now := u.now()
	ads, err := u.repo.ListEligible(ctx, code, now, limit)
	if err != nil {
		return nil, err
	}
	return domain.FilterActive(ads, now), nil
}

// TrackImpression counts an impression unless the ad is inactive or the
// client was already counted within the window.
func (u *AdUseCase) TrackImpression(ctx context.Context, adID int64, client domain.ClientContext) (domain.TrackOutcome, error) {
	_, outcome, err := u.track(ctx, domain.EventImpression, adID, client)
	return outcome, err
}

// TrackClick counts a click and returns the ad for the redirect.
func (u *AdUseCase) TrackClick(ctx context.Context, adID int64, client domain.ClientContext) (*domain.Advertisement, domain.TrackOutcome, error) {
	return u.track(ctx, domain.EventClick, adID, client)
}

func (u *AdUseCase) track(ctx context.Context, event domain.EventType, adID int64, client domain.ClientContext) (ad *domain.Advertisement, outcome domain.TrackOutcome, err error) {
	ctx, span := u.tracer.Start(ctx, "ads.Track",
		trace.WithAttributes(attribute.String("ads.event", string(event)), attribute.Int64("ads.id", adID)))
	defer func() {
		span.SetAttributes(attribute.String("ads.outcome", outcome.String()))
		endSpan(span, err)
	}()

	ad, err = u.repo.GetAd(ctx, adID)
	if err != nil {
		return nil, 0, err
	}
	if !ad.IsActive(u.now()) {
		return ad, u.observe(event, domain.Inactive), nil
	}

	clientKey := client.Key(adID)
	if !u.dedup.ShouldRecord(ctx, event, clientKey) {
		return ad, u.observe(event, domain.Duplicate), nil
	}

	var applied bool
	if event == domain.EventClick {
		applied, err = u.counter.RecordClick(ctx, adID)
	} else {
		applied, err = u.counter.RecordImpression(ctx, adID)
	}
	if err != nil {
		return nil, 0, err
	}
	if !applied {
		// Deactivated or expired between the read and the update.
		return ad, u.observe(event, domain.Inactive), nil
	}

	u.publish(ctx, domain.TrackingEvent{
		Type:          event,
		AdID:          ad.ID,
		AdUUID:        ad.UUID.String(),
		PlacementCode: ad.Placement.Code,
		ClientKey:     clientKey,
		OccurredAt:    u.now().UTC(),
	})
	return ad, u.observe(event, domain.Recorded), nil
}

func (u *AdUseCase) observe(event domain.EventType, outcome domain.TrackOutcome) domain.TrackOutcome {
	telemetry.TrackingEvents.WithLabelValues(string(event), outcome.String()).Inc()
	return outcome
}

func (u *AdUseCase) publish(ctx context.Context, ev domain.TrackingEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, ev); err != nil {
		u.log.WarnContext(ctx, "tracking event not published",
			slog.String("event", string(ev.Type)), slog.Int64("ad_id", ev.AdID), slog.Any("error", err))
	}
}

func requestedCount(n int) int {
	if n <= 0 {
		return selection.DefaultCount
	}
	return selection.ClampCount(n)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
