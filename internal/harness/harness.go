// Package harness drives the wrapped solver invocations for a sweep. Each
// run is executed under an external timing wrapper which writes its report
// to a path keyed by solver name and problem size.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"solverbench/internal/telemetry"
)

// Solver describes one benchmarked program.
type Solver struct {
	Name string            // keys the timing report file name
	Cmd  []string          // command the wrapper runs; the problem size is appended
	Env  map[string]string // overlaid on the inherited environment
}

// Config controls how a sweep's runs are produced.
type Config struct {
	Wrapper    string // timing wrapper binary, e.g. /usr/bin/time
	TimingsDir string
	Execute    bool // false reuses reports left by a previous sweep
}

// Invoker runs one wrapped solver invocation to completion.
type Invoker interface {
	Invoke(ctx context.Context, argv []string, env map[string]string) error
}

// ExecInvoker implements Invoker using os/exec. Solver output passes
// through to the harness's stdout/stderr.
type ExecInvoker struct{}

func (ExecInvoker) Invoke(ctx context.Context, argv []string, env map[string]string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(env) > 0 {
		// os/exec keeps the last value for duplicate keys, so appending
		// the overlay after the inherited environment pins it.
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	return cmd.Run()
}

// SolverError reports a failed invocation with enough context to identify
// the offending run.
type SolverError struct {
	Solver string
	Size   int
	Err    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %s (size %d): %v", e.Solver, e.Size, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// Controller produces the timing reports for each problem size.
type Controller struct {
	cfg     Config
	invoker Invoker
	metrics *telemetry.Metrics
}

// NewController returns a Controller. metrics may be nil.
func NewController(cfg Config, invoker Invoker, metrics *telemetry.Metrics) *Controller {
	return &Controller{cfg: cfg, invoker: invoker, metrics: metrics}
}

// ReportPath returns the deterministic report location for one run.
func (c *Controller) ReportPath(solver Solver, size int) string {
	return filepath.Join(c.cfg.TimingsDir, fmt.Sprintf("%s%d.txt", solver.Name, size))
}

// RunSize ensures the timing reports for one problem size exist and returns
// their paths in solver order. In reuse mode nothing is invoked and missing
// reports surface when the parser opens them. In execute mode the solvers
// run sequentially, each blocking until its wrapper terminates, and reports
// from a prior sweep are overwritten.
func (c *Controller) RunSize(ctx context.Context, solvers []Solver, size int) ([]string, error) {
	paths := make([]string, len(solvers))
	for i, s := range solvers {
		paths[i] = c.ReportPath(s, size)
	}
	if !c.cfg.Execute {
		return paths, nil
	}

	if err := os.MkdirAll(c.cfg.TimingsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create timings directory: %w", err)
	}

	for i, s := range solvers {
		argv := make([]string, 0, len(s.Cmd)+4)
		argv = append(argv, c.cfg.Wrapper, "-o", paths[i])
		argv = append(argv, s.Cmd...)
		argv = append(argv, strconv.Itoa(size))

		slog.Info("running solver", "solver", s.Name, "size", size, "report", paths[i])
		start := time.Now()
		err := c.invoker.Invoke(ctx, argv, s.Env)
		elapsed := time.Since(start)

		if c.metrics != nil {
			c.metrics.SolverRuns.WithLabelValues(s.Name).Inc()
			c.metrics.RunDuration.WithLabelValues(s.Name).Observe(elapsed.Seconds())
		}
		if err != nil {
			if c.metrics != nil {
				c.metrics.SolverFailures.WithLabelValues(s.Name).Inc()
			}
			return nil, &SolverError{Solver: s.Name, Size: size, Err: err}
		}
		slog.Debug("solver finished", "solver", s.Name, "size", size, "elapsed", elapsed)
	}

	return paths, nil
}
