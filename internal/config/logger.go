package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger creates a new structured logger based on configuration.
// Output goes to stderr to keep stdout free for the interactive menu.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *LoggerConfig) newLogger(w io.Writer) *slog.Logger {
	var handler slog.Handler

	level := parseLogLevel(c.Level)
	addSource := level == slog.LevelDebug || level == slog.LevelError

	switch strings.ToLower(c.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: addSource,
		})
	default:
		handler = log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			ReportTimestamp: true,
			ReportCaller:    addSource,
			Prefix:          "bank",
		})
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
