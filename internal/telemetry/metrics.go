package telemetry

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the harness's Prometheus collectors. A long sweep can run
// for hours, so exposing live progress is worth the endpoint.
type Metrics struct {
	SolverRuns     *prometheus.CounterVec
	SolverFailures *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers the solver run collectors on a private
// registry so repeated construction in tests cannot collide.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.SolverRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solverbench_runs_total",
			Help: "Total solver invocations, by solver",
		},
		[]string{"solver"},
	)

	m.SolverFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solverbench_run_failures_total",
			Help: "Solver invocations that exited non-zero, by solver",
		},
		[]string{"solver"},
	)

	m.RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solverbench_run_duration_seconds",
			Help:    "Wall-clock duration of solver invocations, by solver",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		},
		[]string{"solver"},
	)

	m.registry.MustRegister(m.SolverRuns, m.SolverFailures, m.RunDuration)
	return m
}

// Handler returns the scrape handler for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr in the background. Serving is best-effort;
// a bind failure is logged, not fatal to the sweep.
func (m *Metrics) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
}
