package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kunooz-ads/internal/core/domain"
)

// errorResponse is the JSON body of every API error.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// trackingContext bounds store and cache work of a tracking request.
func (h *Handler) trackingContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.opts.TrackingTimeout)
}

// clientContext identifies the caller for dedup. Behind a trusted proxy
// RemoteAddr has been rewritten from its headers by middleware.RealIP.
func clientContext(r *http.Request) domain.ClientContext {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	return domain.ClientContext{RemoteAddr: addr, UserAgent: r.UserAgent()}
}

// idParam parses the {id} path parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// countParam parses ?count, returning 0 when it is absent or invalid.
func countParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		return 0
	}
	return n
}

// baseURL returns the configured public base URL or one derived from the
// request.
func (h *Handler) baseURL(r *http.Request) string {
	if h.opts.PublicBaseURL != "" {
		return strings.TrimRight(h.opts.PublicBaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	} else if p := r.Header.Get("X-Forwarded-Proto"); p == "https" || p == "http" {
		scheme = p
	}
	return scheme + "://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps usecase errors to API responses. Unexpected
// errors are logged and reported as 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrPlacementInUse):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
