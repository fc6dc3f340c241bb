package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kunooz-ads/internal/core/domain"
)

type feedAd struct {
	ID            int64         `json:"id"`
	UUID          string        `json:"uuid"`
	Title         string        `json:"title"`
	Type          domain.AdType `json:"type"`
	Content       string        `json:"content"`
	Link          string        `json:"link"`
	ImpressionURL string        `json:"impression_url"`
	ClickURL      string        `json:"click_url"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Placement     string        `json:"placement"`
	TargetBlank   bool          `json:"target_blank"`
	NoFollow      bool          `json:"nofollow"`
	HTMLCode      string        `json:"html_code"`
}

type feedResponse struct {
	Success    bool     `json:"success"`
	Ads        []feedAd `json:"ads"`
	Count      int      `json:"count"`
	Timestamp  string   `json:"timestamp"`
	ServerTime string   `json:"server_time"`
}

// handleFeed returns a tiered selection of eligible ads as JSON for
// external consumers. URLs are absolute.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ctx, cancel := h.trackingContext(r)
	defer cancel()

	ads, err := h.svc.Tracking.Feed(ctx, code, countParam(r))
	if err != nil {
		h.logger.Error("feed error", slog.String("placement", code), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal error"})
		return
	}

	renderer := h.markup.WithBase(h.baseURL(r))
	items := make([]feedAd, 0, len(ads))
	for i := range ads {
		ad := &ads[i]
		code, err := renderer.Ad(ad)
		if err != nil {
			h.logger.Warn("feed ad skipped", slog.Int64("ad_id", ad.ID), slog.Any("error", err))
			continue
		}
		items = append(items, feedAd{
			ID:            ad.ID,
			UUID:          ad.UUID.String(),
			Title:         ad.Title,
			Type:          ad.Type(),
			Content:       renderer.ContentURL(ad),
			Link:          ad.Link,
			ImpressionURL: renderer.ImpressionURL(ad.ID),
			ClickURL:      renderer.ClickURL(ad.ID),
			Width:         ad.Placement.Width,
			Height:        ad.Placement.Height,
			Placement:     ad.Placement.Code,
			TargetBlank:   ad.TargetBlank,
			NoFollow:      ad.NoFollow,
			HTMLCode:      code,
		})
	}

	now := h.now()
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, feedResponse{
		Success:    true,
		Ads:        items,
		Count:      len(items),
		Timestamp:  now.Format(time.RFC3339),
		ServerTime: now.Format(time.DateTime),
	})
}
