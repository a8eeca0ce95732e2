package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hs_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hs_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hs_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Analysis and index metrics.
var (
	AnalyzeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hs_analyze_calls_total",
		Help: "Filter applications by filter name",
	}, []string{"filter"})

	DocumentsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hs_documents_indexed_total",
		Help: "Documents run through the indexing chain",
	})

	IndexDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hs_index_duration_seconds",
		Help:    "Duration of indexing one document",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hs_searches_total",
		Help: "Searches by mode and result",
	}, []string{"mode", "result"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hs_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hs_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hs_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hs_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)
