package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger. Diagnostics go to stderr
// so the summary table on stdout stays machine-readable.
func InitLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
