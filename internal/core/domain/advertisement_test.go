package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAd(now time.Time) Advertisement {
	return Advertisement{
		ID:        1,
		Title:     "Spring sale",
		Placement: Placement{ID: 1, Code: "header"},
		Content:   Text{Body: "Buy now"},
		Link:      "https://example.com",
		Active:    true,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}
}

func TestIsActiveFlipsOnEachCondition(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ad := activeAd(now)
	require.True(t, ad.IsActive(now))

	off := ad
	off.Active = false
	assert.False(t, off.IsActive(now))

	future := ad
	future.StartDate = now.Add(time.Hour)
	future.EndDate = now.Add(2 * time.Hour)
	assert.False(t, future.IsActive(now), "ad starting in an hour is not eligible")

	past := ad
	past.EndDate = now.Add(-time.Minute)
	assert.False(t, past.IsActive(now))

	edges := ad
	edges.StartDate = now
	edges.EndDate = now
	assert.True(t, edges.IsActive(now), "window bounds are inclusive")
}

func TestFilterActive(t *testing.T) {
	now := time.Now()
	a, b := activeAd(now), activeAd(now)
	b.ID = 2
	b.Active = false
	got := FilterActive([]Advertisement{a, b}, now)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestStatusAndCTR(t *testing.T) {
	now := time.Now()
	ad := activeAd(now)
	assert.Equal(t, StatusActive, ad.Status(now))
	assert.Equal(t, StatusExpired, ad.Status(now.Add(2*time.Hour)))
	assert.Equal(t, StatusScheduled, ad.Status(now.Add(-2*time.Hour)))
	ad.Active = false
	assert.Equal(t, StatusInactive, ad.Status(now))

	assert.Zero(t, ad.CTR())
	ad.Impressions, ad.Clicks = 200, 5
	assert.Equal(t, 2.5, ad.CTR())
	ad.Impressions, ad.Clicks = 3, 2
	assert.Equal(t, 66.67, ad.CTR())
	assert.Equal(t, 33.33, CTRPercent(1, 3))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC)
	ad := activeAd(now)
	ad.EndDate = time.Date(2026, 5, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, ad.DaysRemaining(now))
	ad.EndDate = now.Add(-72 * time.Hour)
	assert.Equal(t, 0, ad.DaysRemaining(now))
}

func TestValidateNew(t *testing.T) {
	now := time.Now()
	ad := activeAd(now)
	ad.StartDate = now.Add(time.Minute)
	require.NoError(t, ad.ValidateNew(now))

	ad.StartDate = now.Add(-time.Minute)
	var verr *ValidationError
	require.True(t, errors.As(ad.ValidateNew(now), &verr))
	assert.Contains(t, verr.Fields, "start_date")

	ad.StartDate = now.Add(3 * time.Hour)
	require.True(t, errors.As(ad.ValidateNew(now), &verr))
	assert.Contains(t, verr.Fields, "end_date")
}

func TestValidateRequiresContentPerType(t *testing.T) {
	now := time.Now()
	cases := map[AdType]string{
		AdTypeBanner: "image is required for banner ads",
		AdTypeText:   "text content is required for text ads",
		AdTypeHTML:   "HTML code is required for HTML ads",
		AdTypeVideo:  "video URL is required for video ads",
	}
	for typ, msg := range cases {
		t.Run(string(typ), func(t *testing.T) {
			ad := activeAd(now)
			ad.StartDate = now.Add(time.Minute)
			content, err := NewContent(typ, "")
			require.NoError(t, err)
			ad.Content = content

			var verr *ValidationError
			require.True(t, errors.As(ad.ValidateNew(now), &verr))
			assert.Equal(t, msg, verr.Fields["content"])
		})
	}

	_, err := NewContent("popunder", "x")
	assert.Error(t, err)
}

func TestValidateUpdateKeepsRunningStart(t *testing.T) {
	now := time.Now()
	prev := activeAd(now)
	edit := prev
	edit.Title = "Renamed"
	assert.NoError(t, edit.ValidateUpdate(&prev, now), "unchanged past start is allowed on edit")

	edit.StartDate = now.Add(-30 * time.Minute)
	assert.Error(t, edit.ValidateUpdate(&prev, now))

	edit.StartDate = prev.StartDate
	edit.EndDate = prev.StartDate
	assert.Error(t, edit.ValidateUpdate(&prev, now))
}

func TestPlacementValidate(t *testing.T) {
	p := Placement{Name: "Top", Code: "homepage_header", Type: PlacementHeader}
	p.ApplyDefaults()
	require.NoError(t, p.Validate())
	assert.Equal(t, 300, p.Width)
	assert.Equal(t, 5, p.MaxAds)

	p.Code = "9-bad code"
	var verr *ValidationError
	require.True(t, errors.As(p.Validate(), &verr))
	assert.Contains(t, verr.Fields, "code")
}

func TestClientKey(t *testing.T) {
	c := ClientContext{RemoteAddr: "10.0.0.1", UserAgent: "Mozilla/5.0"}
	k := c.Key(7)
	assert.Len(t, k, 32)
	assert.Equal(t, k, c.Key(7), "deterministic")
	assert.NotEqual(t, k, c.Key(8))
	assert.NotEqual(t, k, ClientContext{RemoteAddr: "10.0.0.2", UserAgent: "Mozilla/5.0"}.Key(7))
}

func TestCooldowns(t *testing.T) {
	assert.Equal(t, 3600*time.Second, EventImpression.Cooldown())
	assert.Equal(t, 300*time.Second, EventClick.Cooldown())
}
