package httpadapter

import (
	"log/slog"
	"net/http"
	"time"
)

// handleStatsOverview returns the dashboard totals.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleAnalytics returns totals broken down by type and placement for ads
// scheduled within a period. It accepts optional `from` and `to` (RFC3339
// timestamps) query parameters. If no period is provided, it defaults to
// the last 30 days. Invalid parameters result in HTTP 400.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		now     = h.now()
		from    = now.AddDate(0, 0, -30)
		to      = now
		err     error
	)

	if fromStr != "" {
		from, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'from' timestamp")
			return
		}
	}
	if toStr != "" {
		to, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'to' timestamp")
			return
		}
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "'to' must not be before 'from'")
		return
	}

	analytics, err := h.svc.Stats.Analytics(r.Context(), from, to)
	if err != nil {
		h.logger.Error("analytics error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}
