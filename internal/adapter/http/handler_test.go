package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port/mocks"
)

const testSecret = "test-secret"

type fixture struct {
	tracking *mocks.MockTrackingUseCase
	admin    *mocks.MockAdminUseCase
	stats    *mocks.MockStatsUseCase
	handler  http.Handler
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		tracking: mocks.NewMockTrackingUseCase(t),
		admin:    mocks.NewMockAdminUseCase(t),
		stats:    mocks.NewMockStatsUseCase(t),
	}
	h := NewHandler(Services{Tracking: f.tracking, Admin: f.admin, Stats: f.stats}, opts,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.handler = h.Router()
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestImpressionPixel(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.TrackOutcome
		err     error
		status  int
	}{
		{"recorded", domain.Recorded, nil, http.StatusOK},
		{"duplicate", domain.Duplicate, nil, http.StatusOK},
		{"inactive", domain.Inactive, nil, http.StatusNotFound},
		{"not found", 0, domain.ErrNotFound, http.StatusNotFound},
		{"fault", 0, errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			f.tracking.EXPECT().
				TrackImpression(mock.Anything, int64(12), domain.ClientContext{RemoteAddr: "192.0.2.1", UserAgent: "agent"}).
				Return(tt.outcome, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/ads/impression/12", nil)
			req.Header.Set("User-Agent", "agent")
			rec := f.do(req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "image/gif", rec.Header().Get("Content-Type"))
				assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", rec.Header().Get("Cache-Control"))
				assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
				assert.Equal(t, "0", rec.Header().Get("Expires"))
				assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("GIF89a")))
			}
		})
	}
}

func TestImpressionBadID(t *testing.T) {
	f := newFixture(t, Options{})
	rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/impression/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" {
			v, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return v
		}
	}
	t.Fatalf("flash cookie not set")
	return ""
}

func TestClientAddressProxyHeaders(t *testing.T) {
	tests := []struct {
		name  string
		trust bool
		addr  string
	}{
		{"peer address by default", false, "192.0.2.1"},
		{"forwarded behind trusted proxy", true, "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{TrustProxy: tt.trust})
			f.tracking.EXPECT().
				TrackImpression(mock.Anything, int64(4), domain.ClientContext{RemoteAddr: tt.addr}).
				Return(domain.Recorded, nil)

			req := httptest.NewRequest(http.MethodGet, "/ads/impression/4", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			assert.Equal(t, http.StatusOK, f.do(req).Code)
		})
	}
}

func TestClickRedirect(t *testing.T) {
	t.Run("query link", func(t *testing.T) {
		f := newFixture(t, Options{})
		ad := &domain.Advertisement{ID: 5, Link: "https://shop.example.com/p?ref=x"}
		f.tracking.EXPECT().TrackClick(mock.Anything, int64(5), mock.Anything).Return(ad, domain.Recorded, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/click/5/", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://shop.example.com/p?ref=x&utm_source=ads&utm_medium=banner&utm_campaign=5", rec.Header().Get("Location"))
	})

	t.Run("duplicate still redirects", func(t *testing.T) {
		f := newFixture(t, Options{})
		ad := &domain.Advertisement{ID: 6, Link: "https://example.com"}
		f.tracking.EXPECT().TrackClick(mock.Anything, int64(6), mock.Anything).Return(ad, domain.Duplicate, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/click/6", nil))
		assert.Equal(t, "https://example.com?utm_source=ads&utm_medium=banner&utm_campaign=6", rec.Header().Get("Location"))
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.tracking.EXPECT().TrackClick(mock.Anything, int64(7), mock.Anything).
			Return(&domain.Advertisement{ID: 7}, domain.Inactive, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/click/7", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, "warning|This advertisement is no longer active", flashCookie(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.tracking.EXPECT().TrackClick(mock.Anything, int64(8), mock.Anything).
			Return(nil, domain.Recorded, domain.ErrNotFound)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/click/8", nil))
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, "error|An error occurred while processing your request", flashCookie(t, rec))
	})
}

func TestRender(t *testing.T) {
	f := newFixture(t, Options{})
	f.tracking.EXPECT().RenderPlacement(mock.Anything, "header").Return("<!-- no ads -->", nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/render/header", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<!-- no ads -->", rec.Body.String())
}

func TestWidgetCount(t *testing.T) {
	f := newFixture(t, Options{})
	f.tracking.EXPECT().RenderWidget(mock.Anything, "sidebar", 4).Return("<div></div>", nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/widget/sidebar?count=4", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFeed(t *testing.T) {
	f := newFixture(t, Options{})
	ads := []domain.Advertisement{{
		ID:          3,
		UUID:        uuid.New(),
		Title:       "Banner",
		Content:     domain.Banner{ImageURL: "/media/ads/b.png"},
		Link:        "https://example.com",
		TargetBlank: true,
		Placement:   domain.Placement{Code: "header", Width: 728, Height: 90},
	}}
	f.tracking.EXPECT().Feed(mock.Anything, "header", 2).Return(ads, nil)

	req := httptest.NewRequest(http.MethodGet, "/ads/api/feed/header?count=2", nil)
	req.Host = "news.example.org"
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body feedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Ads, 1)
	got := body.Ads[0]
	assert.Equal(t, "http://news.example.org/media/ads/b.png", got.Content)
	assert.Equal(t, "http://news.example.org/ads/click/3", got.ClickURL)
	assert.Equal(t, "http://news.example.org/ads/impression/3", got.ImpressionURL)
	assert.Equal(t, domain.AdTypeBanner, got.Type)
	assert.Contains(t, got.HTMLCode, "http://news.example.org/ads/impression/3")
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
	_, err = time.Parse(time.DateTime, body.ServerTime)
	assert.NoError(t, err)
}

func TestFeedPublicBaseURL(t *testing.T) {
	f := newFixture(t, Options{PublicBaseURL: "https://ads.example.com/"})
	f.tracking.EXPECT().Feed(mock.Anything, "", 0).
		Return([]domain.Advertisement{{ID: 1, Content: domain.Text{Body: "hi"}}}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/api/feed", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"click_url":"https://ads.example.com/ads/click/1"`)
}

func TestAdminAuth(t *testing.T) {
	t.Run("disabled without secret", func(t *testing.T) {
		f := newFixture(t, Options{})
		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/api/admin/placements", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newFixture(t, Options{JWTSecret: testSecret})
		rec := f.do(httptest.NewRequest(http.MethodGet, "/ads/api/admin/placements", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		f := newFixture(t, Options{JWTSecret: testSecret})
		req := httptest.NewRequest(http.MethodGet, "/ads/api/admin/placements", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, "editor"))
		assert.Equal(t, http.StatusForbidden, f.do(req).Code)
	})

	t.Run("admin", func(t *testing.T) {
		f := newFixture(t, Options{JWTSecret: testSecret})
		f.admin.EXPECT().ListPlacements(mock.Anything).
			Return([]domain.Placement{{ID: 1, Code: "header", Type: domain.PlacementHeader}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ads/api/admin/placements", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, RoleAdmin))
		rec := f.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"header"`)
	})
}

func adminRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t, RoleAdmin))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAdminCreateAdValidation(t *testing.T) {
	f := newFixture(t, Options{JWTSecret: testSecret})
	verr := &domain.ValidationError{}
	verr.Add("link", "destination URL must be an absolute http(s) URL")
	f.admin.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(ad *domain.Advertisement) bool {
		return ad.Type() == domain.AdTypeText && ad.Placement.Code == "header" && ad.TargetBlank
	})).Return(verr)

	rec := f.do(adminRequest(t, http.MethodPost, "/ads/api/admin/ads",
		`{"title":"x","placement":"header","ad_type":"text","content":"hi","link":"nope"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "link")
}

func TestAdminDeletePlacement(t *testing.T) {
	f := newFixture(t, Options{JWTSecret: testSecret})
	f.admin.EXPECT().DeletePlacement(mock.Anything, int64(2), false).Return(domain.ErrPlacementInUse)
	f.admin.EXPECT().DeletePlacement(mock.Anything, int64(2), true).Return(nil)

	rec := f.do(adminRequest(t, http.MethodDelete, "/ads/api/admin/placements/2", ""))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(adminRequest(t, http.MethodDelete, "/ads/api/admin/placements/2?cascade=true", ""))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminUpdatePlacementCodeLocked(t *testing.T) {
	f := newFixture(t, Options{JWTSecret: testSecret})
	verr := &domain.ValidationError{}
	verr.Add("code", "code cannot change while advertisements reference it")
	f.admin.EXPECT().UpdatePlacement(mock.Anything, mock.MatchedBy(func(p *domain.Placement) bool {
		return p.ID == 3 && p.Code == "renamed"
	})).Return(verr)

	rec := f.do(adminRequest(t, http.MethodPut, "/ads/api/admin/placements/3",
		`{"name":"Footer","code":"renamed","placement_type":"footer"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "code cannot change while advertisements reference it", body.Fields["code"])
}

func TestAdminToggleNotFound(t *testing.T) {
	f := newFixture(t, Options{JWTSecret: testSecret})
	f.admin.EXPECT().ToggleAd(mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

	rec := f.do(adminRequest(t, http.MethodPost, "/ads/api/admin/ads/9/toggle", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyticsParams(t *testing.T) {
	f := newFixture(t, Options{JWTSecret: testSecret})
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	f.stats.EXPECT().Analytics(mock.Anything, from, to).Return(domain.Analytics{TotalAds: 2}, nil)

	rec := f.do(adminRequest(t, http.MethodGet, "/ads/api/admin/analytics?from=2025-01-01T00:00:00Z&to=2025-02-01T00:00:00Z", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(adminRequest(t, http.MethodGet, "/ads/api/admin/analytics?from=yesterday", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)

	down := NewHandler(Services{Tracking: mocks.NewMockTrackingUseCase(t)}, Options{
		Ping: func(ctx context.Context) error { return errors.New("no database") },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	down.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
