package httpadapter

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"kunooz-ads/internal/core/domain"
)

// pixel is a transparent 1x1 GIF.
var pixel, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

// handleImpression records an impression and serves the tracking pixel.
// Unknown and inactive ads are 404. A deduplicated impression still gets
// the pixel.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx, cancel := h.trackingContext(r)
	defer cancel()

	outcome, err := h.svc.Tracking.TrackImpression(ctx, id, clientContext(r))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.Error("impression error", slog.Int64("ad_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	case outcome == domain.Inactive:
		http.NotFound(w, r)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", "image/gif")
	hdr.Set("Content-Length", strconv.Itoa(len(pixel)))
	hdr.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	hdr.Set("Pragma", "no-cache")
	hdr.Set("Expires", "0")
	_, _ = w.Write(pixel)
}
