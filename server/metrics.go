// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the solver collectors. A nil *Metrics records nothing.
type Metrics struct {
	solves   *prometheus.CounterVec
	steps    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg
// (prometheus.DefaultRegisterer when nil) under namespace
// ("lvtransport" when empty).
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "lvtransport"
	}

	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total solve requests by method and outcome status.",
		}, []string{"method", "status"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "steps",
			Help:      "Number of trace steps per solve by method.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "duration_seconds",
			Help:      "Solve wall time in seconds by method.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"method"}),
	}
	reg.MustRegister(m.solves, m.steps, m.duration)

	return m
}

// observe records one finished solve.
func (m *Metrics) observe(method, status string, steps int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(method, status).Inc()
	m.steps.WithLabelValues(method).Observe(float64(steps))
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// reject records a request that never reached a solver.
func (m *Metrics) reject(method, status string) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(method, status).Inc()
}
