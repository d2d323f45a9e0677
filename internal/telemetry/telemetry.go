// Package telemetry exposes Prometheus metrics for the edge gateway.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_http_requests_total",
			Help: "Total number of HTTP requests, labeled by method and code.",
		},
		[]string{"method", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edge_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, labeled by method and flow.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "flow"},
	)

	assetBlocksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "edge_asset_blocks_total",
			Help: "Total static-asset requests converted to 404 because the origin served HTML.",
		},
	)

	crawlerRewritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_crawler_rewrites_total",
			Help: "Total crawler responses with rewritten metadata, labeled by route type.",
		},
		[]string{"route"},
	)

	entityFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_entity_fetches_total",
			Help: "Total catalog entity lookups, labeled by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	originErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_origin_errors_total",
			Help: "Total failed origin fetches, labeled by flow.",
		},
		[]string{"flow"},
	)
)

// Handler returns the standard Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records metrics for a completed request.
func ObserveHTTPRequest(method, flow string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, flow).Observe(duration.Seconds())
}

// ObserveAssetBlock records a static-asset request blocked with a 404.
func ObserveAssetBlock() {
	assetBlocksTotal.Inc()
}

// ObserveCrawlerRewrite records a crawler response whose meta block was rewritten.
func ObserveCrawlerRewrite(routeType string) {
	crawlerRewritesTotal.WithLabelValues(routeType).Inc()
}

// ObserveEntityFetch records the outcome of a catalog lookup.
func ObserveEntityFetch(kind, outcome string) {
	entityFetchesTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveOriginError records a failed origin fetch.
func ObserveOriginError(flow string) {
	originErrorsTotal.WithLabelValues(flow).Inc()
}
