package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the business review service.
// Metrics are organized by subsystem: HTTP traffic, businesses, and reviews.
// All counters and histograms are registered via promauto for automatic
// registration with the default Prometheus registry.
type Metrics struct {
	// HTTPRequestsTotal counts HTTP requests, labeled by method, route pattern, and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request duration in seconds, labeled by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// BusinessesCreated counts the total number of businesses created.
	BusinessesCreated prometheus.Counter

	// BusinessesUpdated counts the total number of business updates.
	BusinessesUpdated prometheus.Counter

	// BusinessesDeleted counts the total number of businesses deleted.
	BusinessesDeleted prometheus.Counter

	// ReviewsCreated counts the total number of reviews created.
	ReviewsCreated prometheus.Counter

	// ReviewsUpdated counts the total number of review updates.
	ReviewsUpdated prometheus.Counter

	// ReviewsDeleted counts the total number of reviews deleted.
	ReviewsDeleted prometheus.Counter

	// ReviewConflicts counts review creations rejected because the user
	// already reviewed the business.
	ReviewConflicts prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route, and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		BusinessesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "businesses_created_total",
			Help:      "Total number of businesses created",
		}),
		BusinessesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "businesses_updated_total",
			Help:      "Total number of business updates",
		}),
		BusinessesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "businesses_deleted_total",
			Help:      "Total number of businesses deleted",
		}),

		ReviewsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_created_total",
			Help:      "Total number of reviews created",
		}),
		ReviewsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_updated_total",
			Help:      "Total number of review updates",
		}),
		ReviewsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_deleted_total",
			Help:      "Total number of reviews deleted",
		}),
		ReviewConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_conflicts_total",
			Help:      "Total number of review creations rejected as duplicates",
		}),
	}
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordBusinessCreated records a successful business creation.
func (m *Metrics) RecordBusinessCreated() {
	m.BusinessesCreated.Inc()
}

// RecordBusinessUpdated records a successful business update.
func (m *Metrics) RecordBusinessUpdated() {
	m.BusinessesUpdated.Inc()
}

// RecordBusinessDeleted records a successful business deletion.
func (m *Metrics) RecordBusinessDeleted() {
	m.BusinessesDeleted.Inc()
}

// RecordReviewCreated records a successful review creation.
func (m *Metrics) RecordReviewCreated() {
	m.ReviewsCreated.Inc()
}

// RecordReviewUpdated records a successful review update.
func (m *Metrics) RecordReviewUpdated() {
	m.ReviewsUpdated.Inc()
}

// RecordReviewDeleted records a successful review deletion.
func (m *Metrics) RecordReviewDeleted() {
	m.ReviewsDeleted.Inc()
}

// RecordReviewConflict records a review creation rejected as a duplicate.
func (m *Metrics) RecordReviewConflict() {
	m.ReviewConflicts.Inc()
}
