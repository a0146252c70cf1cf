package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futhorc_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "futhorc_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "futhorc_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Translation metrics, shared by every serving surface.
var (
	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futhorc_translations_total",
		Help: "Translation requests by surface (web, bot)",
	}, []string{"surface"})

	TranslationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "futhorc_translation_duration_seconds",
		Help:    "Time spent rendering one request's text in runes",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	TranslationInputBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "futhorc_translation_input_bytes",
		Help:    "Size of translated input texts in bytes",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	})
)

// History store metrics.
var (
	HistoryWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futhorc_history_writes_total",
		Help: "Translation history inserts by result",
	}, []string{"result"})
)
