package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// adColumns selects an advertisement joined with its placement in the
// order expected by scanAd.
const adColumns = `
            a.id, a.uuid, a.title, a.ad_type, a.content, a.link,
            a.target_blank, a.nofollow, a.start_date, a.end_date,
            a.active, a.priority, a.impressions, a.clicks,
            a.last_impression, a.last_click,
            a.advertiser_name, a.advertiser_email, a.notes,
            a.created_at, a.updated_at,
            p.id, p.name, p.code, p.placement_type, p.description,
            p.width, p.height, p.active, p.max_ads, p.priority,
            p.created_at, p.updated_at`

const adFrom = `
        FROM advertisements a
        JOIN ad_placements p ON p.id = a.placement_id`

const placementColumns = `id, name, code, placement_type, description, width, height, active, max_ads, priority, created_at, updated_at`

// AdRepository implements the port repositories using pgxpool for
// PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

var (
	_ port.AdRepository    = (*AdRepository)(nil)
	_ port.AdminRepository = (*AdRepository)(nil)
	_ port.StatsRepository = (*AdRepository)(nil)
)

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

func scanAd(row pgx.CollectableRow) (domain.Advertisement, error) {
	var (
		ad      domain.Advertisement
		adType  string
		content string
	)
	err := row.Scan(
		&ad.ID, &ad.UUID, &ad.Title, &adType, &content, &ad.Link,
		&ad.TargetBlank, &ad.NoFollow, &ad.StartDate, &ad.EndDate,
		&ad.Active, &ad.Priority, &ad.Impressions, &ad.Clicks,
		&ad.LastImpression, &ad.LastClick,
		&ad.AdvertiserName, &ad.AdvertiserEmail, &ad.Notes,
		&ad.CreatedAt, &ad.UpdatedAt,
		&ad.Placement.ID, &ad.Placement.Name, &ad.Placement.Code, &ad.Placement.Type, &ad.Placement.Description,
		&ad.Placement.Width, &ad.Placement.Height, &ad.Placement.Active, &ad.Placement.MaxAds, &ad.Placement.Priority,
		&ad.Placement.CreatedAt, &ad.Placement.UpdatedAt,
	)
	if err != nil {
		return ad, err
	}
	ad.Content, err = domain.NewContent(domain.AdType(adType), content)
	return ad, err
}

func scanPlacement(row pgx.Row) (*domain.Placement, error) {
	var p domain.Placement
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Type, &p.Description, &p.Width, &p.Height,
		&p.Active, &p.MaxAds, &p.Priority, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAd returns an ad with its placement.
func (r *AdRepository) GetAd(ctx context.Context, id int64) (*domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+adFrom+` WHERE a.id = $1`, id)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectExactlyOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListEligible returns ads of the placement that are active at now.
func (r *AdRepository) ListEligible(ctx context.Context, placementCode string, now time.Time, limit int) ([]domain.Advertisement, error) {
	query := `SELECT ` + adColumns + adFrom + `
        WHERE a.active
          AND a.start_date <= $1 AND a.end_date >= $1
          AND ($2 = '' OR p.code = $2)
        ORDER BY a.priority DESC, a.start_date DESC
        LIMIT NULLIF($3::int, 0)`
	rows, err := r.pool.Query(ctx, query, now, placementCode, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// IncrementImpressions adds one impression when the ad is active at now.
func (r *AdRepository) IncrementImpressions(ctx context.Context, id int64, now time.Time) (bool, error) {
	return r.increment(ctx, "impressions", "last_impression", id, now)
}

// IncrementClicks adds one click when the ad is active at now.
func (r *AdRepository) IncrementClicks(ctx context.Context, id int64, now time.Time) (bool, error) {
	return r.increment(ctx, "clicks", "last_click", id, now)
}

// increment performs the gated update as a single statement so concurrent
// requests never lose updates. When nothing was updated, an existence probe
// separates unknown ids from inactive ads.
func (r *AdRepository) increment(ctx context.Context, counter, stamp string, id int64, now time.Time) (bool, error) {
	query := fmt.Sprintf(`UPDATE advertisements
        SET %[1]s = %[1]s + 1, %[2]s = $2
        WHERE id = $1 AND active AND start_date <= $2 AND end_date >= $2`, counter, stamp)
	tag, err := r.pool.Exec(ctx, query, id, now)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM advertisements WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrNotFound
	}
	return false, nil
}

// CreatePlacement inserts p and fills its id and timestamps.
func (r *AdRepository) CreatePlacement(ctx context.Context, p *domain.Placement) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO ad_placements
    (name, code, placement_type, description, width, height, active, max_ads, priority)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id, created_at, updated_at`,
		p.Name, p.Code, string(p.Type), p.Description, p.Width, p.Height, p.Active, p.MaxAds, p.Priority).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// GetPlacement returns a placement by id.
func (r *AdRepository) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	return scanPlacement(r.pool.QueryRow(ctx, `SELECT `+placementColumns+` FROM ad_placements WHERE id = $1`, id))
}

// GetPlacementByCode returns a placement by its unique code.
func (r *AdRepository) GetPlacementByCode(ctx context.Context, code string) (*domain.Placement, error) {
	return scanPlacement(r.pool.QueryRow(ctx, `SELECT `+placementColumns+` FROM ad_placements WHERE code = $1`, code))
}

// ListPlacements returns all placements, highest priority first.
func (r *AdRepository) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+placementColumns+` FROM ad_placements ORDER BY priority DESC, name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Placement, error) {
		p, err := scanPlacement(row)
		if err != nil {
			return domain.Placement{}, err
		}
		return *p, nil
	})
}

// UpdatePlacement stores every editable field of p.
func (r *AdRepository) UpdatePlacement(ctx context.Context, p *domain.Placement) error {
	err := r.pool.QueryRow(ctx, `UPDATE ad_placements
SET name = $2, code = $3, placement_type = $4, description = $5, width = $6, height = $7,
    active = $8, max_ads = $9, priority = $10, updated_at = now()
WHERE id = $1
RETURNING updated_at`,
		p.ID, p.Name, p.Code, string(p.Type), p.Description, p.Width, p.Height, p.Active, p.MaxAds, p.Priority).
		Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate(err)
}

// DeletePlacement removes a placement; its ads go with it.
func (r *AdRepository) DeletePlacement(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ad_placements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountAdsInPlacement returns how many ads reference the placement.
func (r *AdRepository) CountAdsInPlacement(ctx context.Context, placementID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM advertisements WHERE placement_id = $1`, placementID).Scan(&n)
	return n, err
}

// CreateAd inserts ad and fills its id and timestamps.
func (r *AdRepository) CreateAd(ctx context.Context, ad *domain.Advertisement) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO advertisements
    (uuid, title, placement_id, ad_type, content, link, target_blank, nofollow,
     start_date, end_date, active, priority, advertiser_name, advertiser_email, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
RETURNING id, created_at, updated_at`,
		ad.UUID, ad.Title, ad.Placement.ID, string(ad.Type()), ad.Content.Value(), ad.Link, ad.TargetBlank, ad.NoFollow,
		ad.StartDate, ad.EndDate, ad.Active, ad.Priority, ad.AdvertiserName, ad.AdvertiserEmail, ad.Notes).
		Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	return translate(err)
}

// ListAds returns ads matching filter, newest first.
func (r *AdRepository) ListAds(ctx context.Context, filter port.AdFilter) ([]domain.Advertisement, error) {
	var (
		where []string
		args  []any
	)
	if filter.PlacementCode != "" {
		args = append(args, filter.PlacementCode)
		where = append(where, fmt.Sprintf("p.code = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		where = append(where, fmt.Sprintf("a.ad_type = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		where = append(where, fmt.Sprintf("a.active = $%d", len(args)))
	}
	query := `SELECT ` + adColumns + adFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// UpdateAd stores every editable field of ad. Counters are left alone.
func (r *AdRepository) UpdateAd(ctx context.Context, ad *domain.Advertisement) error {
	err := r.pool.QueryRow(ctx, `UPDATE advertisements
SET title = $2, placement_id = $3, ad_type = $4, content = $5, link = $6, target_blank = $7,
    nofollow = $8, start_date = $9, end_date = $10, active = $11, priority = $12,
    advertiser_name = $13, advertiser_email = $14, notes = $15, updated_at = now()
WHERE id = $1
RETURNING updated_at`,
		ad.ID, ad.Title, ad.Placement.ID, string(ad.Type()), ad.Content.Value(), ad.Link, ad.TargetBlank,
		ad.NoFollow, ad.StartDate, ad.EndDate, ad.Active, ad.Priority,
		ad.AdvertiserName, ad.AdvertiserEmail, ad.Notes).
		Scan(&ad.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate(err)
}

// SetAdActive flips the stored active flag.
func (r *AdRepository) SetAdActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE advertisements SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAd removes an ad.
func (r *AdRepository) DeleteAd(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DashboardTotals aggregates counters across all ads.
func (r *AdRepository) DashboardTotals(ctx context.Context, now, until time.Time) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	err := r.pool.QueryRow(ctx, `SELECT
    count(*),
    COALESCE(sum(impressions), 0),
    COALESCE(sum(clicks), 0),
    count(*) FILTER (WHERE active AND end_date >= $1 AND end_date <= $2)
FROM advertisements`, now, until).
		Scan(&s.TotalAds, &s.TotalImpressions, &s.TotalClicks, &s.ExpiringAds)
	return s, err
}

// CountActive counts ads servable at now.
func (r *AdRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM advertisements
WHERE active AND start_date <= $1 AND end_date >= $1`, now).Scan(&n)
	return n, err
}

// ListScheduledWithin returns ads whose whole window lies in [from, to].
func (r *AdRepository) ListScheduledWithin(ctx context.Context, from, to time.Time) ([]domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+adFrom+`
        WHERE a.start_date >= $1 AND a.end_date <= $2
        ORDER BY a.id`, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// translate maps constraint violations to validation errors.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		verr := &domain.ValidationError{}
		if strings.Contains(pgErr.ConstraintName, "code") {
			verr.Add("code", "placement code already exists")
		} else {
			verr.Add(pgErr.ConstraintName, "value already exists")
		}
		return verr
	case pgForeignKeyViolation:
		verr := &domain.ValidationError{}
		verr.Add("placement", "placement does not exist")
		return verr
	}
	return err
}
