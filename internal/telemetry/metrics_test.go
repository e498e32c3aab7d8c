package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	m.SolverRuns.WithLabelValues("nim").Inc()
	m.SolverRuns.WithLabelValues("nim").Inc()
	m.SolverFailures.WithLabelValues("fenics").Inc()
	m.RunDuration.WithLabelValues("nim").Observe(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SolverRuns.WithLabelValues("nim")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolverFailures.WithLabelValues("fenics")))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.SolverRuns.WithLabelValues("nim").Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "solverbench_runs_total")
}

func TestIndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := NewMetrics()
	b := NewMetrics()
	a.SolverRuns.WithLabelValues("nim").Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SolverRuns.WithLabelValues("nim")))
}
