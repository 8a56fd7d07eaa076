package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Shared configuration fetches, by outcome (success/fallback)
	ConfigFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "config_fetches_total",
			Help:      "Shared configuration resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// Model discovery duration
	DiscoveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "discovery_duration_seconds",
			Help:      "Model discovery call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"provider"},
	)

	// Models reported installed by the last discovery call
	DiscoveredModels = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "discovered_models",
			Help:      "Models reported installed by the last discovery call",
		},
		[]string{"provider"},
	)

	// Provider health gauge
	ProviderHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "docyard",
			Subsystem: "catalog_api",
			Name:      "provider_health",
			Help:      "Provider health status (1=healthy, 0=unhealthy)",
		},
		[]string{"provider"},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordConfigFetch records one shared configuration resolution
func RecordConfigFetch(outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	ConfigFetchesTotal.WithLabelValues(outcome).Inc()
}

// RecordDiscovery records the outcome of one model discovery call
func RecordDiscovery(provider string, durationSec float64, count int, healthy bool) {
	DiscoveryDuration.WithLabelValues(provider).Observe(durationSec)
	DiscoveredModels.WithLabelValues(provider).Set(float64(count))
	SetProviderHealth(provider, healthy)
}

// SetProviderHealth sets the health status of a provider
func SetProviderHealth(provider string, healthy bool) {
	val := 0.0
	if healthy {
		val = 1.0
	}
	ProviderHealth.WithLabelValues(provider).Set(val)
}
