package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	httpRequestsTotal  *prometheus.CounterVec
	httpLatencySeconds *prometheus.HistogramVec
	feeMutationsTotal  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the fee tracker.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		feeMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fee_mutations_total",
			Help: "Writes to students, terms and payments by outcome.",
		}, []string{"entity", "action", "outcome"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, feeMutationsTotal)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the request latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// FeeMutations exposes the counter of ledger writes.
func FeeMutations() *prometheus.CounterVec {
	RegisterMetrics()
	return feeMutationsTotal
}

// RecordMutation counts one write attempt against entity.
func RecordMutation(entity, action string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	FeeMutations().WithLabelValues(entity, action, outcome).Inc()
}
