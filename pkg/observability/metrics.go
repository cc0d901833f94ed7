// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the pokedex service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LatencyBuckets defines histogram buckets for lookup and provider
// latencies, ranging from 10ms to 30s.
var LatencyBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Translation outcome label values.
const (
	OutcomeTranslated  = "translated"
	OutcomeUnavailable = "unavailable"
	OutcomeSkipped     = "skipped"
)

var (
	// RequestsTotal counts all HTTP requests by method, status class, and route.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status", "route"},
	)

	// RequestDuration records HTTP request duration in seconds by method and route.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LatencyBuckets,
		},
		[]string{"method", "route"},
	)

	// RequestsInFlight tracks the number of requests currently being served.
	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokedex_requests_in_flight",
			Help: "Requests in flight",
		},
	)

	// ProviderRequestsTotal counts outbound requests to the species and
	// translation providers.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_provider_requests_total",
			Help: "Provider requests",
		},
		[]string{"provider", "status"},
	)

	// ProviderLatency records outbound provider latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_provider_latency_seconds",
			Help:    "Provider latency",
			Buckets: LatencyBuckets,
		},
		[]string{"provider"},
	)

	// TranslationsTotal counts translation attempts by dialect and outcome.
	TranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_translations_total",
			Help: "Description translations",
		},
		[]string{"dialect", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		RequestsInFlight,
		ProviderRequestsTotal,
		ProviderLatency,
		TranslationsTotal,
	)
}

// ObserveProviderCall records one outbound provider request. status is a
// status class ("2xx", "4xx", "5xx") or "error" for transport failures.
func ObserveProviderCall(provider, status string, elapsed time.Duration) {
	ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
	ProviderLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveTranslation records the outcome of a translation decision.
func ObserveTranslation(dialect, outcome string) {
	TranslationsTotal.WithLabelValues(dialect, outcome).Inc()
}
