package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kunooz-ads/internal/adapter/markup"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/telemetry"
)

// Services bundles the usecases served over HTTP. Admin and Stats may be
// nil when the admin API is disabled.
type Services struct {
	Tracking port.TrackingUseCase
	Admin    port.AdminUseCase
	Stats    port.StatsUseCase
}

// Options tunes the HTTP adapter.
type Options struct {
	// PublicBaseURL is used for absolute URLs in the feed. Empty derives
	// them from the request.
	PublicBaseURL string
	// TrackingTimeout bounds store and cache work of tracking endpoints.
	TrackingTimeout time.Duration
	// TrustProxy derives the client address from proxy headers.
	TrustProxy bool
	// JWTSecret enables the admin API when set.
	JWTSecret string
	// Ping reports store health for /healthz.
	Ping func(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    Services
	opts   Options
	markup *markup.Renderer
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	if opts.TrackingTimeout <= 0 {
		opts.TrackingTimeout = 2 * time.Second
	}
	h := &Handler{svc: svc, opts: opts, markup: markup.New(""), logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer, middleware.StripSlashes, telemetry.Metrics)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", telemetry.Handler())

	r.Route("/ads", func(r chi.Router) {
		r.Get("/render/{code}", h.handleRender)
		r.Get("/widget/{code}", h.handleWidget)
		r.Get("/impression/{id}", h.handleImpression)
		r.Get("/click/{id}", h.handleAdClick)
		r.Get("/api/feed", h.handleFeed)
		r.Get("/api/feed/{code}", h.handleFeed)

		if opts.JWTSecret != "" && svc.Admin != nil && svc.Stats != nil {
			r.Route("/api/admin", func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/stats", h.handleStatsOverview)
				r.Get("/analytics", h.handleAnalytics)

				r.Route("/placements", func(r chi.Router) {
					r.Get("/", h.handleListPlacements)
					r.Post("/", h.handleCreatePlacement)
					r.Get("/{id}", h.handleGetPlacement)
					r.Put("/{id}", h.handleUpdatePlacement)
					r.Delete("/{id}", h.handleDeletePlacement)
				})
				r.Route("/ads", func(r chi.Router) {
					r.Get("/", h.handleListAds)
					r.Post("/", h.handleCreateAd)
					r.Get("/{id}", h.handleGetAd)
					r.Put("/{id}", h.handleUpdateAd)
					r.Delete("/{id}", h.handleDeleteAd)
					r.Post("/{id}/toggle", h.handleToggleAd)
				})
			})
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.opts.TrackingTimeout)
		defer cancel()
		if err := h.opts.Ping(ctx); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
