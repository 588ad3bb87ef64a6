package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	intakeRequestsTotal   *prometheus.CounterVec
	intakeLatencySeconds  *prometheus.HistogramVec
	intakeSubmissionsKind *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the intake
// service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		intakeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_requests_total",
			Help: "Total number of intake API requests served.",
		}, []string{"method", "route", "status"})

		intakeLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_latency_seconds",
			Help:    "Latency distribution for intake API requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		intakeSubmissionsKind = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Form submissions processed, labelled by kind and outcome.",
		}, []string{"kind", "outcome"})

		prometheus.MustRegister(intakeRequestsTotal, intakeLatencySeconds, intakeSubmissionsKind)
	})
}

// IntakeRequests exposes the counter for intake requests.
func IntakeRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return intakeRequestsTotal
}

// IntakeLatency exposes the latency histogram for intake requests.
func IntakeLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return intakeLatencySeconds
}

// Submissions exposes the per-kind submission outcome counter.
func Submissions() *prometheus.CounterVec {
	RegisterMetrics()
	return intakeSubmissionsKind
}
