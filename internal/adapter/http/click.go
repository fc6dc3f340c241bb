package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kunooz-ads/internal/core/domain"
)

// Flash messages set when a click cannot be redirected to the ad.
const (
	flashInactive = "This advertisement is no longer active"
	flashError    = "An error occurred while processing your request"
)

// handleAdClick records a click and redirects to the ad's link with UTM
// parameters. Inactive ads, unknown ads and failures redirect home with a
// flash message instead.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.redirectHome(w, r, "error", flashError)
		return
	}
	ctx, cancel := h.trackingContext(r)
	defer cancel()

	ad, outcome, err := h.svc.Tracking.TrackClick(ctx, id, clientContext(r))
	switch {
	case err != nil:
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Error("click error", slog.Int64("ad_id", id), slog.Any("error", err))
		}
		h.redirectHome(w, r, "error", flashError)
		return
	case outcome == domain.Inactive:
		h.redirectHome(w, r, "warning", flashInactive)
		return
	}
	http.Redirect(w, r, withUTM(ad.Link, ad.ID), http.StatusFound)
}

// withUTM appends the ads UTM parameters to link.
func withUTM(link string, id int64) string {
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + "utm_source=ads&utm_medium=banner&utm_campaign=" + strconv.FormatInt(id, 10)
}

// redirectHome sends the client to / with a one-shot flash cookie holding
// level|message.
func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request, level, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "flash",
		Value:    url.QueryEscape(level + "|" + msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
