package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleRender serves the HTML fragment of a placement. Impressions of the
// rendered ads are counted when the fragment is built.
func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ctx, cancel := h.trackingContext(r)
	defer cancel()

	html, err := h.svc.Tracking.RenderPlacement(ctx, code)
	if err != nil {
		h.logger.Error("render error", slog.String("placement", code), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, html)
}

// handleWidget serves a random sample of a placement's ads. The optional
// count query parameter is clamped to [1, 10] and defaults to 3.
func (h *Handler) handleWidget(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ctx, cancel := h.trackingContext(r)
	defer cancel()

	html, err := h.svc.Tracking.RenderWidget(ctx, code, countParam(r))
	if err != nil {
		h.logger.Error("widget error", slog.String("placement", code), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, html)
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}
