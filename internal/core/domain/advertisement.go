package domain

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Priority tiers used by the selection engine.
const (
	HighPriority   = 3
	MediumPriority = 2
)

// Advertisement is a single ad bound to exactly one placement. Counters are
// only changed by the store's atomic increments.
type Advertisement struct {
	ID   int64
	UUID uuid.UUID

	Title     string
	Placement Placement
	Content   Content

	Link        string
	TargetBlank bool
	NoFollow    bool

	StartDate time.Time
	EndDate   time.Time
	Active    bool
	Priority  int

	Impressions    int64
	Clicks         int64
	LastImpression *time.Time
	LastClick      *time.Time

	AdvertiserName  string
	AdvertiserEmail string
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Type returns the content discriminator, or "" when content is unset.
func (a *Advertisement) Type() AdType {
	if a.Content == nil {
		return ""
	}
	return a.Content.Type()
}

// IsActive reports whether the ad may be served at now: the active flag is
// set and now lies within [StartDate, EndDate].
func (a *Advertisement) IsActive(now time.Time) bool {
	return a.Active && !now.Before(a.StartDate) && !now.After(a.EndDate)
}

// CTR returns clicks per impression as a percentage rounded to two
// decimals.
func (a *Advertisement) CTR() float64 {
	return CTRPercent(a.Clicks, a.Impressions)
}

// DaysRemaining counts calendar days until EndDate, never negative.
func (a *Advertisement) DaysRemaining(now time.Time) int {
	end := truncateDay(a.EndDate.In(now.Location()))
	days := int(end.Sub(truncateDay(now)).Hours() / 24)
	return max(days, 0)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AdStatus is the display status used by the admin API.
type AdStatus string

const (
	StatusActive    AdStatus = "active"
	StatusInactive  AdStatus = "inactive"
	StatusScheduled AdStatus = "scheduled"
	StatusExpired   AdStatus = "expired"
)

// Status classifies the ad at now.
func (a *Advertisement) Status(now time.Time) AdStatus {
	switch {
	case !a.Active:
		return StatusInactive
	case now.Before(a.StartDate):
		return StatusScheduled
	case now.After(a.EndDate):
		return StatusExpired
	default:
		return StatusActive
	}
}

// FilterActive keeps the ads that are active at now, preserving order.
func FilterActive(ads []Advertisement, now time.Time) []Advertisement {
	out := ads[:0:0]
	for i := range ads {
		if ads[i].IsActive(now) {
			out = append(out, ads[i])
		}
	}
	return out
}

// ApplyDefaults sets defaults for a freshly authored ad.
func (a *Advertisement) ApplyDefaults() {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	if a.Priority == 0 {
		a.Priority = DefaultPriority
	}
}

// ValidateNew checks an ad about to be created.
func (a *Advertisement) ValidateNew(now time.Time) error {
	verr := a.validate()
	if !a.StartDate.IsZero() && a.StartDate.Before(now) {
		verr.Add("start_date", "start date cannot be in the past")
	}
	return verr.OrNil()
}

// ValidateUpdate checks an edited ad against its stored version. The
// not-in-the-past rule only applies when the start date is moved.
func (a *Advertisement) ValidateUpdate(prev *Advertisement, now time.Time) error {
	verr := a.validate()
	if !a.StartDate.Equal(prev.StartDate) && a.StartDate.Before(now) {
		verr.Add("start_date", "start date cannot be in the past")
	}
	return verr.OrNil()
}

func (a *Advertisement) validate() *ValidationError {
	verr := &ValidationError{}
	if a.Title == "" {
		verr.Add("title", "title is required")
	}
	if a.Placement.ID == 0 && a.Placement.Code == "" {
		verr.Add("placement", "placement is required")
	}
	if a.Content == nil {
		verr.Add("ad_type", "unknown ad type")
	} else if a.Content.Value() == "" {
		verr.Add("content", requiredContentMessage(a.Content.Type()))
	}
	if !validLink(a.Link) {
		verr.Add("link", "destination URL must be an absolute http(s) URL")
	}
	if a.StartDate.IsZero() {
		verr.Add("start_date", "start date is required")
	}
	if a.EndDate.IsZero() {
		verr.Add("end_date", "end date is required")
	}
	if !a.StartDate.IsZero() && !a.EndDate.IsZero() && !a.StartDate.Before(a.EndDate) {
		verr.Add("end_date", "end date must be after start date")
	}
	return verr
}

func validLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
