package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Similarity rebuild metrics
	SimilarityRebuildsTotal   *prometheus.CounterVec
	SimilarityRebuildDuration prometheus.Histogram
	SimilarityUsers           prometheus.Gauge
	SimilarityPairs           prometheus.Gauge

	// Recommendation metrics
	RecommendationsServedTotal *prometheus.CounterVec
	RecommendationDuration     *prometheus.HistogramVec

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Views sync
	ViewsFlushedTotal prometheus.Counter
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),

			SimilarityRebuildsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "similarity_rebuilds_total",
					Help: "Similarity rebuild runs by result (success, failed, busy)",
				},
				[]string{"result"},
			),
			SimilarityRebuildDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "similarity_rebuild_duration_seconds",
					Help:    "Wall time of successful similarity rebuilds",
					Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
				},
			),
			SimilarityUsers: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "similarity_users",
					Help: "Users with at least one subscription in the last rebuild",
				},
			),
			SimilarityPairs: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "similarity_pairs",
					Help: "Rows written to user_similarity by the last rebuild",
				},
			),

			RecommendationsServedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "recommendations_served_total",
					Help: "Recommendation lists served by source (personalized, popular)",
				},
				[]string{"source"},
			),
			RecommendationDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "recommendation_duration_seconds",
					Help:    "Time to build one recommendation list",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
				},
				[]string{"source"},
			),

			CacheHitsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_hits_total",
					Help: "Total number of cache hits",
				},
				[]string{"cache"},
			),
			CacheMissesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_misses_total",
					Help: "Total number of cache misses",
				},
				[]string{"cache"},
			),

			ViewsFlushedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "post_views_flushed_total",
					Help: "Buffered post views written back to the database",
				},
			),
		}
	})
	return instance
}

// Get returns the metrics instance, initializing it on first use
func Get() *Metrics {
	return Initialize()
}
