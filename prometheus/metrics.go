package prometheus

import (
	"time"

	"catalog-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Search metrics
	SearchRequestsCounter   prometheus.CounterVec
	SearchEmptyScopeCounter prometheus.Counter

	// Category aggregation metrics
	CategoryAggregationsCounter prometheus.Counter

	// Image proxy metrics
	ImageProxyCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Search metrics
	SearchRequestsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_search_requests_total",
			Help: "Total number of catalog search requests",
		},
		[]string{"scope"},
	)

	SearchEmptyScopeCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_search_empty_scope_total",
			Help: "Total number of searches whose scope resolved to no tenants",
		},
	)

	// Category aggregation metrics
	CategoryAggregationsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_category_aggregations_total",
			Help: "Total number of category count aggregations",
		},
	)

	// Image proxy metrics
	ImageProxyCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_image_proxy_requests_total",
			Help: "Total number of bot image proxy requests",
		},
		[]string{"outcome"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSearch increments the counter for search requests by scope
func RecordSearch(scope string) {
	SearchRequestsCounter.WithLabelValues(scope).Inc()
}

// RecordEmptyScope increments the counter for searches with an empty tenant scope
func RecordEmptyScope() {
	SearchEmptyScopeCounter.Inc()
}

// RecordCategoryAggregation increments the counter for category aggregations
func RecordCategoryAggregation() {
	CategoryAggregationsCounter.Inc()
}

// RecordImageProxy increments the counter for image proxy requests
func RecordImageProxy(outcome string) {
	ImageProxyCounter.WithLabelValues(outcome).Inc()
}
