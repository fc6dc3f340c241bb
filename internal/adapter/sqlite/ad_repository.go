// Package sqlite is the embedded single-node ad store. It implements the
// same ports as the PostgreSQL adapter on top of modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
)

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

// AdRepository implements the port repositories on an SQLite database.
type AdRepository struct {
	db *sql.DB
	// now stamps created_at/updated_at; replaced in tests.
	now func() time.Time
}

var (
	_ port.AdRepository    = (*AdRepository)(nil)
	_ port.AdminRepository = (*AdRepository)(nil)
	_ port.StatsRepository = (*AdRepository)(nil)
)

// NewAdRepository returns a repository backed by db. The schema must have
// been applied with db.NewSQLite.
func NewAdRepository(db *sql.DB) *AdRepository {
	return &AdRepository{db: db, now: time.Now}
}

func ms(t time.Time) int64 { return t.UnixMilli() }

func fromMS(v int64) time.Time { return time.UnixMilli(v).UTC() }

func nullableTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMS(v.Int64)
	return &t
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAd(row scanner) (domain.Advertisement, error) {
	var (
		ad                           domain.Advertisement
		id, adType, content          string
		start, end, created, updated int64
		pCreated, pUpdated           int64
		lastImp, lastClick           sql.NullInt64
	)
	err := row.Scan(
		&ad.ID, &id, &ad.Title, &adType, &content, &ad.Link,
		&ad.TargetBlank, &ad.NoFollow, &start, &end,
		&ad.Active, &ad.Priority, &ad.Impressions, &ad.Clicks,
		&lastImp, &lastClick,
		&ad.AdvertiserName, &ad.AdvertiserEmail, &ad.Notes,
		&created, &updated,
		&ad.Placement.ID, &ad.Placement.Name, &ad.Placement.Code, &ad.Placement.Type, &ad.Placement.Description,
		&ad.Placement.Width, &ad.Placement.Height, &ad.Placement.Active, &ad.Placement.MaxAds, &ad.Placement.Priority,
		&pCreated, &pUpdated,
	)
	if err != nil {
		return ad, err
	}
	if ad.UUID, err = uuid.Parse(id); err != nil {
		return ad, fmt.Errorf("ad %d: %w", ad.ID, err)
	}
	if ad.Content, err = domain.NewContent(domain.AdType(adType), content); err != nil {
		return ad, fmt.Errorf("ad %d: %w", ad.ID, err)
	}
	ad.StartDate, ad.EndDate = fromMS(start), fromMS(end)
	ad.CreatedAt, ad.UpdatedAt = fromMS(created), fromMS(updated)
	ad.Placement.CreatedAt, ad.Placement.UpdatedAt = fromMS(pCreated), fromMS(pUpdated)
	ad.LastImpression, ad.LastClick = nullableTime(lastImp), nullableTime(lastClick)
	return ad, nil
}

func scanPlacement(row scanner) (*domain.Placement, error) {
	var (
		p                domain.Placement
		created, updated int64
	)
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Type, &p.Description, &p.Width, &p.Height,
		&p.Active, &p.MaxAds, &p.Priority, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt, p.UpdatedAt = fromMS(created), fromMS(updated)
	return &p, nil
}

func (r *AdRepository) queryAds(ctx context.Context, query string, args ...any) ([]domain.Advertisement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Advertisement
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// GetAd returns an ad with its placement.
func (r *AdRepository) GetAd(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := scanAd(r.db.QueryRowContext(ctx, `SELECT `+adColumns+adFrom+` WHERE a.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListEligible returns ads of the placement that are active at now.
func (r *AdRepository) ListEligible(ctx context.Context, placementCode string, now time.Time, limit int) ([]domain.Advertisement, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.queryAds(ctx, `SELECT `+adColumns+adFrom+`
    WHERE a.active = 1
      AND a.start_date <= ? AND a.end_date >= ?
      AND (? = '' OR p.code = ?)
    ORDER BY a.priority DESC, a.start_date DESC
    LIMIT ?`, ms(now), ms(now), placementCode, placementCode, limit)
}

// IncrementImpressions adds one impression when the ad is active at now.
func (r *AdRepository) IncrementImpressions(ctx context.Context, id int64, now time.Time) (bool, error) {
	return r.increment(ctx, "impressions", "last_impression", id, now)
}

// IncrementClicks adds one click when the ad is active at now.
func (r *AdRepository) IncrementClicks(ctx context.Context, id int64, now time.Time) (bool, error) {
	return r.increment(ctx, "clicks", "last_click", id, now)
}

func (r *AdRepository) increment(ctx context.Context, counter, stamp string, id int64, now time.Time) (bool, error) {
	query := fmt.Sprintf(`UPDATE advertisements
    SET %[1]s = %[1]s + 1, %[2]s = ?
    WHERE id = ? AND active = 1 AND start_date <= ? AND end_date >= ?`, counter, stamp)
	at := ms(now)
	res, err := r.db.ExecContext(ctx, query, at, id, at, at)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return false, err
	} else if n == 1 {
		return true, nil
	}
	var exists bool
	if err = r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM advertisements WHERE id = ?)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrNotFound
	}
	return false, nil
}

// CreatePlacement inserts p and fills its id and timestamps.
func (r *AdRepository) CreatePlacement(ctx context.Context, p *domain.Placement) error {
	now := r.now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO ad_placements
    (name, code, placement_type, description, width, height, active, max_ads, priority, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		p.Name, p.Code, string(p.Type), p.Description, p.Width, p.Height, p.Active, p.MaxAds, p.Priority, ms(now), ms(now))
	if err != nil {
		return translate(err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	p.CreatedAt, p.UpdatedAt = fromMS(ms(now)), fromMS(ms(now))
	return nil
}

// GetPlacement returns a placement by id.
func (r *AdRepository) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	return scanPlacement(r.db.QueryRowContext(ctx, `SELECT `+placementColumns+` FROM ad_placements WHERE id = ?`, id))
}

// GetPlacementByCode returns a placement by its unique code.
func (r *AdRepository) GetPlacementByCode(ctx context.Context, code string) (*domain.Placement, error) {
	return scanPlacement(r.db.QueryRowContext(ctx, `SELECT `+placementColumns+` FROM ad_placements WHERE code = ?`, code))
}

// ListPlacements returns all placements, highest priority first.
func (r *AdRepository) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+placementColumns+` FROM ad_placements ORDER BY priority DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Placement
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// UpdatePlacement stores every editable field of p.
func (r *AdRepository) UpdatePlacement(ctx context.Context, p *domain.Placement) error {
	now := r.now().UTC()
	res, err := r.db.ExecContext(ctx, `UPDATE ad_placements
SET name = ?, code = ?, placement_type = ?, description = ?, width = ?, height = ?,
    active = ?, max_ads = ?, priority = ?, updated_at = ?
WHERE id = ?`,
		p.Name, p.Code, string(p.Type), p.Description, p.Width, p.Height, p.Active, p.MaxAds, p.Priority, ms(now), p.ID)
	if err = affectedOne(res, translate(err)); err != nil {
		return err
	}
	p.UpdatedAt = fromMS(ms(now))
	return nil
}

// DeletePlacement removes a placement; its ads go with it.
func (r *AdRepository) DeletePlacement(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ad_placements WHERE id = ?`, id)
	return affectedOne(res, err)
}

// CountAdsInPlacement returns how many ads reference the placement.
func (r *AdRepository) CountAdsInPlacement(ctx context.Context, placementID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM advertisements WHERE placement_id = ?`, placementID).Scan(&n)
	return n, err
}

// CreateAd inserts ad and fills its id and timestamps.
func (r *AdRepository) CreateAd(ctx context.Context, ad *domain.Advertisement) error {
	now := r.now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO advertisements
    (uuid, title, placement_id, ad_type, content, link, target_blank, nofollow,
     start_date, end_date, active, priority, advertiser_name, advertiser_email, notes,
     created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ad.UUID.String(), ad.Title, ad.Placement.ID, string(ad.Type()), ad.Content.Value(), ad.Link,
		ad.TargetBlank, ad.NoFollow, ms(ad.StartDate), ms(ad.EndDate), ad.Active, ad.Priority,
		ad.AdvertiserName, ad.AdvertiserEmail, ad.Notes, ms(now), ms(now))
	if err != nil {
		return translate(err)
	}
	if ad.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	ad.CreatedAt, ad.UpdatedAt = fromMS(ms(now)), fromMS(ms(now))
	return nil
}

// ListAds returns ads matching filter, newest first.
func (r *AdRepository) ListAds(ctx context.Context, filter port.AdFilter) ([]domain.Advertisement, error) {
	var (
		where []string
		args  []any
	)
	if filter.PlacementCode != "" {
		where = append(where, "p.code = ?")
		args = append(args, filter.PlacementCode)
	}
	if filter.Type != "" {
		where = append(where, "a.ad_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Active != nil {
		where = append(where, "a.active = ?")
		args = append(args, *filter.Active)
	}
	query := `SELECT ` + adColumns + adFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}
	return r.queryAds(ctx, query, args...)
}

// UpdateAd stores every editable field of ad. Counters are left alone.
func (r *AdRepository) UpdateAd(ctx context.Context, ad *domain.Advertisement) error {
	now := r.now().UTC()
	res, err := r.db.ExecContext(ctx, `UPDATE advertisements
SET title = ?, placement_id = ?, ad_type = ?, content = ?, link = ?, target_blank = ?,
    nofollow = ?, start_date = ?, end_date = ?, active = ?, priority = ?,
    advertiser_name = ?, advertiser_email = ?, notes = ?, updated_at = ?
WHERE id = ?`,
		ad.Title, ad.Placement.ID, string(ad.Type()), ad.Content.Value(), ad.Link, ad.TargetBlank,
		ad.NoFollow, ms(ad.StartDate), ms(ad.EndDate), ad.Active, ad.Priority,
		ad.AdvertiserName, ad.AdvertiserEmail, ad.Notes, ms(now), ad.ID)
	if err = affectedOne(res, translate(err)); err != nil {
		return err
	}
	ad.UpdatedAt = fromMS(ms(now))
	return nil
}

// SetAdActive flips the stored active flag.
func (r *AdRepository) SetAdActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE advertisements SET active = ?, updated_at = ? WHERE id = ?`,
		active, ms(r.now()), id)
	return affectedOne(res, err)
}

// DeleteAd removes an ad.
func (r *AdRepository) DeleteAd(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = ?`, id)
	return affectedOne(res, err)
}

// DashboardTotals aggregates counters across all ads.
func (r *AdRepository) DashboardTotals(ctx context.Context, now, until time.Time) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	err := r.db.QueryRowContext(ctx, `SELECT
    count(*),
    COALESCE(sum(impressions), 0),
    COALESCE(sum(clicks), 0),
    COALESCE(sum(CASE WHEN active = 1 AND end_date >= ? AND end_date <= ? THEN 1 ELSE 0 END), 0)
FROM advertisements`, ms(now), ms(until)).
		Scan(&s.TotalAds, &s.TotalImpressions, &s.TotalClicks, &s.ExpiringAds)
	return s, err
}

// CountActive counts ads servable at now.
func (r *AdRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM advertisements
WHERE active = 1 AND start_date <= ? AND end_date >= ?`, ms(now), ms(now)).Scan(&n)
	return n, err
}

// ListScheduledWithin returns ads whose whole window lies in [from, to].
func (r *AdRepository) ListScheduledWithin(ctx context.Context, from, to time.Time) ([]domain.Advertisement, error) {
	return r.queryAds(ctx, `SELECT `+adColumns+adFrom+`
    WHERE a.start_date >= ? AND a.end_date <= ?
    ORDER BY a.id`, ms(from), ms(to))
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// translate maps constraint violations to validation errors.
func translate(err error) error {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return err
	}
	verr := &domain.ValidationError{}
	switch sqlErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		if strings.Contains(sqlErr.Error(), "ad_placements.code") {
			verr.Add("code", "placement code already exists")
		} else {
			verr.Add("uuid", "value already exists")
		}
		return verr
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		verr.Add("placement", "placement does not exist")
		return verr
	}
	return err
}
