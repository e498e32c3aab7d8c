package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List saved sweep runs",
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := newStoreFunc(viper.GetString("history_file"))
	if err != nil {
		return err
	}

	runs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPOINTS\tMAX SIZE\tMEAN SPEEDUP")
	for _, r := range runs {
		maxSize := 0
		for _, s := range r.Sizes {
			if s > maxSize {
				maxSize = s
			}
		}

		mean := 0.0
		if len(r.Speedup) > 0 {
			for _, s := range r.Speedup {
				mean += s
			}
			mean /= float64(len(r.Speedup))
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%.2fx\n",
			r.Timestamp.Format(time.RFC3339), len(r.Sizes), maxSize, mean)
	}
	return w.Flush()
}
