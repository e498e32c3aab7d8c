package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solverbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solverbench",
	Short: "Compare two numerical solvers across a problem-size sweep",
	Long: `solverbench times two solvers for the same problem over a logarithmically
spaced sweep of problem sizes, using an external timing wrapper to capture
user CPU time. It parses the wrapper's report files, renders a log-log
comparison chart, and reports the per-size speedup.`,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Expose Prometheus metrics on this address while sweeping")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("metrics_addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))

	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newHistoryCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SOLVERBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Solver commands: the wrapper runs the command with the problem size
	// appended as the final argument.
	viper.SetDefault("solvers.baseline.name", "nim")
	viper.SetDefault("solvers.baseline.label", "Nimfem")
	viper.SetDefault("solvers.baseline.cmd", []string{"./poisson"})
	viper.SetDefault("solvers.contender.name", "fenics")
	viper.SetDefault("solvers.contender.label", "FEniCS")
	viper.SetDefault("solvers.contender.cmd", []string{"python3", "poisson.py"})

	viper.SetDefault("wrapper", "/usr/bin/time")
	viper.SetDefault("threads_env", "OMP_NUM_THREADS")
	viper.SetDefault("timings_dir", "timings")
	viper.SetDefault("chart", "comparison.png")
	viper.SetDefault("history_file", filepath.Join(".solverbench", "history.json"))

	viper.SetDefault("sweep.min_exp", 2.0)
	viper.SetDefault("sweep.max_exp", 7.0)
	viper.SetDefault("sweep.points", 6)

	viper.SetDefault("verbose", false)
	viper.SetDefault("metrics_addr", "")

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	telemetry.InitLogger(viper.GetBool("verbose"))
}
