package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentvault_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_recommendation_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"result"}, // "success", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "contentvault_recommendation_duration_seconds",
			Help:    "Time to compute a user's recommendations",
			Buckets: prometheus.DefBuckets,
		},
	)

	ScoringFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contentvault_scoring_fallbacks_total",
			Help: "Items whose score was replaced by the random fallback",
		},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_cache_requests_total",
			Help: "Cache lookups by cache and result",
		},
		[]string{"cache", "result"}, // result: "hit", "miss", "error"
	)

	WalrusRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_walrus_requests_total",
			Help: "Walrus storage calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	WalrusRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contentvault_walrus_request_duration_seconds",
			Help:    "Walrus storage call latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"operation"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contentvault_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	UploadedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contentvault_uploaded_bytes_total",
			Help: "Plaintext bytes uploaded by content type",
		},
		[]string{"type"},
	)
)

// RecordAPIRequest records a completed HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordRecommendation(duration time.Duration, err error) {
	if err != nil {
		RecommendationRequests.WithLabelValues("error").Inc()
		return
	}
	RecommendationRequests.WithLabelValues("success").Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

func RecordCacheLookup(cache string, hit bool, err error) {
	switch {
	case err != nil:
		CacheRequests.WithLabelValues(cache, "error").Inc()
	case hit:
		CacheRequests.WithLabelValues(cache, "hit").Inc()
	default:
		CacheRequests.WithLabelValues(cache, "miss").Inc()
	}
}

func RecordWalrusRequest(operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	WalrusRequests.WithLabelValues(operation, result).Inc()
	WalrusRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
