package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// FormatJSON selects the JSON handler. It is the default.
const FormatJSON = "json"

// FormatConsole selects a human-readable, colorized handler.
const FormatConsole = "console"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger with the specified output. The level
// is parsed from the config; defaults to INFO if invalid or empty. Format
// selects between JSON (default) and a tint console handler.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)

	if strings.EqualFold(config.Format, FormatConsole) {
		return slog.New(tint.NewHandler(w, &tint.Options{ //nolint:exhaustruct // only relevant fields needed
			Level: level,
		}))
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
