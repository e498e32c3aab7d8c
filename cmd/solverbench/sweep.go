package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solverbench/internal/benchmark"
	"solverbench/internal/harness"
	"solverbench/internal/report"
	"solverbench/internal/sweep"
	"solverbench/internal/telemetry"
	"solverbench/internal/timing"
)

// Swappable constructors so tests can substitute fakes.
var (
	newInvokerFunc = func() harness.Invoker { return harness.ExecInvoker{} }
	newStoreFunc   = func(path string) (benchmark.Store, error) { return benchmark.NewFileStore(path) }
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the solver comparison sweep and render the chart",
		Long: `Derives a log-spaced series of problem sizes, times both solvers for each
size under the external timing wrapper, parses the timing reports, and
renders a log-log comparison chart.

By default existing timing reports are reused so an expensive sweep is not
re-executed by accident; pass --run to invoke the solvers and overwrite
the reports.`,
		RunE: runSweep,
	}

	cmd.Flags().Bool("run", false, "Execute the solvers (default reuses existing timing reports)")
	cmd.Flags().Bool("no-save", false, "Do not append this sweep to the run history")
	cmd.Flags().String("chart", "", "Chart output path (overrides config)")

	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	execute, _ := cmd.Flags().GetBool("run")
	noSave, _ := cmd.Flags().GetBool("no-save")

	chartPath := viper.GetString("chart")
	if flagChart, _ := cmd.Flags().GetString("chart"); flagChart != "" {
		chartPath = flagChart
	}

	var metrics *telemetry.Metrics
	if addr := viper.GetString("metrics_addr"); addr != "" {
		metrics = telemetry.NewMetrics()
		metrics.Serve(addr)
	}

	baseline := harness.Solver{
		Name: viper.GetString("solvers.baseline.name"),
		Cmd:  viper.GetStringSlice("solvers.baseline.cmd"),
	}
	contender := harness.Solver{
		Name: viper.GetString("solvers.contender.name"),
		Cmd:  viper.GetStringSlice("solvers.contender.cmd"),
		// Pin the contender to one thread for a fair comparison.
		Env: map[string]string{viper.GetString("threads_env"): "1"},
	}
	solvers := []harness.Solver{baseline, contender}

	elements := sweep.Elements(
		viper.GetFloat64("sweep.min_exp"),
		viper.GetFloat64("sweep.max_exp"),
		viper.GetInt("sweep.points"),
	)
	sizes := sweep.Sizes(elements)
	slog.Info("starting sweep", "sizes", sizes, "execute", execute)

	ctrl := harness.NewController(harness.Config{
		Wrapper:    viper.GetString("wrapper"),
		TimingsDir: viper.GetString("timings_dir"),
		Execute:    execute,
	}, newInvokerFunc(), metrics)

	ctx := cmd.Context()
	baselineTimes := make([]float64, 0, len(sizes))
	contenderTimes := make([]float64, 0, len(sizes))
	for _, size := range sizes {
		paths, err := ctrl.RunSize(ctx, solvers, size)
		if err != nil {
			return err
		}

		a, err := timing.ParseReport(paths[0])
		if err != nil {
			return err
		}
		b, err := timing.ParseReport(paths[1])
		if err != nil {
			return err
		}
		baselineTimes = append(baselineTimes, a)
		contenderTimes = append(contenderTimes, b)
	}

	pair, err := benchmark.NewSeriesPair(baselineTimes, contenderTimes, len(sizes))
	if err != nil {
		return err
	}
	speedup := pair.Speedup()
	slog.Info("sweep complete", "speedup", speedup)

	labelA := viper.GetString("solvers.baseline.label")
	labelB := viper.GetString("solvers.contender.label")
	if err := report.Comparison(elements, []report.Series{
		{Label: labelA, Times: pair.Baseline},
		{Label: labelB, Times: pair.Contender},
	}, chartPath); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	printSweepSummary(cmd, labelA, labelB, sizes, pair, speedup)
	fmt.Fprintf(cmd.OutOrStdout(), "\nChart written to %s\n", chartPath)

	if !noSave {
		store, err := newStoreFunc(viper.GetString("history_file"))
		if err != nil {
			return err
		}
		run := benchmark.Run{
			Timestamp: time.Now(),
			Elements:  elements,
			Sizes:     sizes,
			Times: map[string][]float64{
				baseline.Name:  pair.Baseline,
				contender.Name: pair.Contender,
			},
			Speedup: speedup,
		}
		if err := store.Save(run); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
	}

	return nil
}

func printSweepSummary(cmd *cobra.Command, labelA, labelB string, sizes []int, pair benchmark.SeriesPair, speedup []float64) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "SIZE\t%s [s]\t%s [s]\tSPEEDUP\n", strings.ToUpper(labelA), strings.ToUpper(labelB))
	for i, size := range sizes {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.2fx\n", size, pair.Baseline[i], pair.Contender[i], speedup[i])
	}
	w.Flush()
}
