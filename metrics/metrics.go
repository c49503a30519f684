// Package metrics exposes Prometheus collectors describing solver runs.
//
// The CLI is a one-shot process, so instead of serving /metrics it writes
// the registry to a node_exporter textfile (WriteTextfile) after the run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "tourbench"
	solveSubsystem   = "solve"
)

// Collector groups the per-run solver metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	runsTotal       *prometheus.CounterVec
	failuresTotal   *prometheus.CounterVec
	candidatesTotal *prometheus.CounterVec
	tourCost        *prometheus.GaugeVec
	cities          *prometheus.GaugeVec
	durationSeconds *prometheus.HistogramVec
}

// New creates a Collector with all metrics registered on a fresh registry.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "runs_total",
				Help:      "Completed solver runs by strategy",
			},
			[]string{"strategy"},
		),
		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "failures_total",
				Help:      "Solver runs that returned an error, by strategy",
			},
			[]string{"strategy"},
		),
		candidatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "candidates_total",
				Help:      "Complete tours scored, by strategy",
			},
			[]string{"strategy"},
		),
		tourCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "tour_cost",
				Help:      "Cost of the last tour found, by strategy",
			},
			[]string{"strategy"},
		),
		cities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "cities",
				Help:      "Instance size of the last run, by strategy",
			},
			[]string{"strategy"},
		),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: solveSubsystem,
				Name:      "duration_seconds",
				Help:      "Wall time of the search, by strategy",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 8),
			},
			[]string{"strategy"},
		),
	}

	c.reg.MustRegister(
		c.runsTotal,
		c.failuresTotal,
		c.candidatesTotal,
		c.tourCost,
		c.cities,
		c.durationSeconds,
	)

	return c
}

// ObserveSolve records a successful run.
func (c *Collector) ObserveSolve(strategy string, cities, candidates int, cost float64, elapsed time.Duration) {
	c.runsTotal.WithLabelValues(strategy).Inc()
	c.candidatesTotal.WithLabelValues(strategy).Add(float64(candidates))
	c.tourCost.WithLabelValues(strategy).Set(cost)
	c.cities.WithLabelValues(strategy).Set(float64(cities))
	c.durationSeconds.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveFailure records a run that returned an error.
func (c *Collector) ObserveFailure(strategy string) {
	c.failuresTotal.WithLabelValues(strategy).Inc()
}

// Registry returns the underlying registry, e.g. for promhttp or tests.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteTextfile atomically writes every metric to path in the text
// exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
