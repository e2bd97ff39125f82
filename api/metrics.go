package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "dartsim"

// Metrics holds the Prometheus collectors updated by the handlers.
type Metrics struct {
	simulations       prometheus.Counter
	optimizations     *prometheus.CounterVec
	requestErrors     *prometheus.CounterVec
	shotsSampled      prometheus.Counter
	coverage          prometheus.Histogram
	optimizeDurations prometheus.Histogram
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	auto := promauto.With(reg)
	return &Metrics{
		simulations: auto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "simulations_total",
			Help:      "Completed simulation runs.",
		}),
		optimizations: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "optimizations_total",
			Help:      "Completed board-size searches, by whether a size was found.",
		}, []string{"found"}),
		requestErrors: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "request_errors_total",
			Help:      "Rejected or failed requests, by endpoint.",
		}, []string{"endpoint"}),
		shotsSampled: auto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "shots_sampled_total",
			Help:      "Shots drawn across all simulations and searches.",
		}),
		coverage: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "simulation_coverage_percent",
			Help:      "Coverage of completed simulation runs.",
			Buckets:   []float64{50, 75, 90, 95, 98, 99, 100},
		}),
		optimizeDurations: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "optimize_duration_seconds",
			Help:      "Wall time spent in board-size searches.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) recordSimulation(shots int, coverage float64) {
	m.simulations.Inc()
	m.shotsSampled.Add(float64(shots))
	m.coverage.Observe(coverage)
}

func (m *Metrics) recordOptimization(shots int, found bool, seconds float64) {
	m.optimizations.WithLabelValues(strconv.FormatBool(found)).Inc()
	m.shotsSampled.Add(float64(shots))
	m.optimizeDurations.Observe(seconds)
}

func (m *Metrics) recordError(endpoint string) {
	m.requestErrors.WithLabelValues(endpoint).Inc()
}
