package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiErrorsTotal        *prometheus.CounterVec
	degradedReadsTotal    *prometheus.CounterVec
	aiPersistenceFailures *prometheus.CounterVec
	cacheLookupsTotal     *prometheus.CounterVec
	activityEventsTotal   *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "islandgo_api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 15.0, 30.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		degradedReadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_degraded_reads_total",
			Help: "List reads that failed and were answered with an empty result.",
		}, []string{"kind"})

		aiPersistenceFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_ai_persistence_failures_total",
			Help: "AI results that could not be stored.",
		}, []string{"kind"})

		cacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_cache_lookups_total",
			Help: "Cache lookups by cache and outcome.",
		}, []string{"cache", "result"})

		activityEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "islandgo_activity_events_total",
			Help: "Recorded activities by type and outcome.",
		}, []string{"type", "result"})

		prometheus.MustRegister(
			apiRequestsTotal,
			apiLatencySeconds,
			apiErrorsTotal,
			degradedReadsTotal,
			aiPersistenceFailures,
			cacheLookupsTotal,
			activityEventsTotal,
		)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// DegradedReads exposes the counter for degraded list reads.
func DegradedReads() *prometheus.CounterVec {
	RegisterMetrics()
	return degradedReadsTotal
}

// AIPersistenceFailures exposes the counter for AI results that were not stored.
func AIPersistenceFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return aiPersistenceFailures
}

// CacheLookups exposes the counter for cache hits and misses.
func CacheLookups() *prometheus.CounterVec {
	RegisterMetrics()
	return cacheLookupsTotal
}

// ActivityEvents exposes the counter for recorded activities.
func ActivityEvents() *prometheus.CounterVec {
	RegisterMetrics()
	return activityEventsTotal
}
