package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Face encoding job
	EncodingRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "face_encoding_runs_total",
			Help: "Total number of encoding archive rebuilds",
		},
		[]string{"result"}, // "success", "error"
	)

	EncodingRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "face_encoding_run_duration_seconds",
			Help:    "Duration of a full encoding archive rebuild",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
	)

	EncodingArchiveEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "face_encoding_archive_entries",
			Help: "Number of face vectors in the latest encoding archive",
		},
	)

	EncodingSkippedImages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "face_encoding_skipped_images_total",
			Help: "Images left out of the archive",
		},
		[]string{"reason"},
	)

	// Dashboard cache
	DashboardCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Dashboard responses served from cache",
		},
		[]string{"view"},
	)

	DashboardCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Dashboard responses computed from the database",
		},
		[]string{"view"},
	)
)

// RecordAPIRequest records a finished API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEncodingRun records the outcome of one archive rebuild.
func RecordEncodingRun(duration time.Duration, entries int, err error) {
	EncodingRunDuration.Observe(duration.Seconds())
	if err != nil {
		EncodingRunsTotal.WithLabelValues("error").Inc()
		return
	}
	EncodingRunsTotal.WithLabelValues("success").Inc()
	EncodingArchiveEntries.Set(float64(entries))
}

// RecordSkippedImage counts an image excluded from the archive.
func RecordSkippedImage(reason string) {
	EncodingSkippedImages.WithLabelValues(reason).Inc()
}

// RecordDashboardCache counts a cache lookup for the given dashboard view.
func RecordDashboardCache(view string, hit bool) {
	if hit {
		DashboardCacheHits.WithLabelValues(view).Inc()
	} else {
		DashboardCacheMisses.WithLabelValues(view).Inc()
	}
}
