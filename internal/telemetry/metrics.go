// Package telemetry holds the Prometheus collectors and OpenTelemetry
// setup shared by the adapters.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TrackingEvents counts processed impressions and clicks by outcome.
	TrackingEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_tracking_events_total",
			Help: "Tracking requests by event type and outcome",
		},
		[]string{"type", "outcome"},
	)

	// CacheRequests counts render cache lookups.
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_cache_requests_total",
			Help: "Render cache lookups by entry kind and result",
		},
		[]string{"kind", "result"},
	)

	// DedupErrors counts dedup store failures.
	DedupErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_dedup_errors_total",
			Help: "Dedup store failures by event type",
		},
		[]string{"type"},
	)

	// PublishErrors counts tracking events the publisher failed to deliver.
	PublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_event_publish_errors_total",
			Help: "Tracking events that could not be published",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
)

// Metrics records request counts and latency per chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
