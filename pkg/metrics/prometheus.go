// Package metrics provides Prometheus metrics for the advisor service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the recommendation pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Upstream metrics - BGG API interaction
	searches          prometheus.Counter
	searchErrors      prometheus.Counter
	detailFetches     prometheus.Counter
	detailFetchErrors prometheus.Counter
	detailRepolls     prometheus.Counter
	upstreamLatency   *prometheus.HistogramVec

	// Pipeline metrics - scoring and recommendation quality
	candidatesSkipped     prometheus.Counter
	gamesScored           prometheus.Counter
	gamesIneligible       prometheus.Counter
	recommendationsServed prometheus.Counter
	emptyRecommendations  prometheus.Counter
	pipelineLatency       prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "advisor",
		subsystem:        "recommender",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.searches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Total number of upstream search calls",
	})

	m.searchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_errors_total",
		Help:      "Total number of failed upstream search calls",
	})

	m.detailFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detail_fetches_total",
		Help:      "Total number of upstream detail fetches",
	})

	m.detailFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detail_fetch_errors_total",
		Help:      "Total number of failed upstream detail fetches",
	})

	m.detailRepolls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detail_repolls_total",
		Help:      "Total number of re-polls after an HTTP 202 from upstream",
	})

	m.upstreamLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upstream_latency_milliseconds",
			Help:      "Upstream call latency in milliseconds by endpoint",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)

	m.candidatesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_skipped_total",
		Help:      "Total number of candidates skipped due to fetch or parse failures",
	})

	m.gamesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_scored_total",
		Help:      "Total number of games run through the scorer",
	})

	m.gamesIneligible = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_ineligible_total",
		Help:      "Total number of games excluded by the player-count gate",
	})

	m.recommendationsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_served_total",
		Help:      "Total number of recommendation responses served",
	})

	m.emptyRecommendations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendations_empty_total",
		Help:      "Total number of responses with no recommendable games",
	})

	m.pipelineLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_latency_milliseconds",
		Help:      "End-to-end recommendation pipeline latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level recording functions delegating to the global manager.

// RecordSearch increments the upstream search counter.
func RecordSearch() {
	if globalManager.enabled {
		globalManager.searches.Inc()
	}
}

// RecordSearchError increments the failed search counter.
func RecordSearchError() {
	if globalManager.enabled {
		globalManager.searchErrors.Inc()
	}
}

// RecordDetailFetch increments the detail fetch counter.
func RecordDetailFetch() {
	if globalManager.enabled {
		globalManager.detailFetches.Inc()
	}
}

// RecordDetailFetchError increments the failed detail fetch counter.
func RecordDetailFetchError() {
	if globalManager.enabled {
		globalManager.detailFetchErrors.Inc()
	}
}

// RecordDetailRepoll increments the 202 re-poll counter.
func RecordDetailRepoll() {
	if globalManager.enabled {
		globalManager.detailRepolls.Inc()
	}
}

// RecordUpstreamLatency records one upstream call duration for an endpoint.
func RecordUpstreamLatency(endpoint string, ms float64) {
	if globalManager.enabled {
		globalManager.upstreamLatency.WithLabelValues(endpoint).Observe(ms)
	}
}

// RecordCandidateSkipped increments the skipped-candidate counter.
func RecordCandidateSkipped() {
	if globalManager.enabled {
		globalManager.candidatesSkipped.Inc()
	}
}

// RecordGameScored increments the scored-game counter.
func RecordGameScored() {
	if globalManager.enabled {
		globalManager.gamesScored.Inc()
	}
}

// RecordGameIneligible increments the player-count exclusion counter.
func RecordGameIneligible() {
	if globalManager.enabled {
		globalManager.gamesIneligible.Inc()
	}
}

// RecordRecommendationServed increments the served-response counter.
func RecordRecommendationServed() {
	if globalManager.enabled {
		globalManager.recommendationsServed.Inc()
	}
}

// RecordEmptyRecommendation increments the empty-response counter.
func RecordEmptyRecommendation() {
	if globalManager.enabled {
		globalManager.emptyRecommendations.Inc()
	}
}

// RecordPipelineLatency records one end-to-end pipeline duration.
func RecordPipelineLatency(ms float64) {
	if globalManager.enabled {
		globalManager.pipelineLatency.Observe(ms)
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// UpdateSystemMemoryUsage sets the current allocated memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}
