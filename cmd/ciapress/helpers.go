package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"ciapress/internal/config"
	"ciapress/internal/logging"
)

// warnf prints a prefixed warning line. Warnings report recoverable
// problems (unusable game directories, missing RTPs) without stopping
// the rest of a batch.
func warnf(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "ciapress: Warning: "+format+"\n", args...)
}

// buildLogger routes structured logs to a file under the configured log
// directory. Build progress on stdout stays reserved for the report lines.
func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	logPath := filepath.Join(cfg.Paths.LogDir, "ciapress.log")
	return logging.New(logging.Options{
		Level:            cfg.Logging.Level,
		Format:           cfg.Logging.Format,
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
}

func formatBytes(value int64) string {
	const (
		kiB = 1024
		miB = kiB * 1024
		giB = miB * 1024
	)
	switch {
	case value >= giB:
		return fmt.Sprintf("%.2f GiB", float64(value)/float64(giB))
	case value >= miB:
		return fmt.Sprintf("%.2f MiB", float64(value)/float64(miB))
	case value >= kiB:
		return fmt.Sprintf("%.2f KiB", float64(value)/float64(kiB))
	default:
		return fmt.Sprintf("%d B", value)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	return fmt.Sprintf("%dd", days)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
