package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/studysnap/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New creates a JSON logger writing to out at the named level. An unknown
// level falls back to info and a warning is written through the new logger.
func New(out io.Writer, level string) *slog.Logger {
	parsed, err := ParseLevel(level)

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parsed}))
	if err != nil {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// Setup initializes the server's logging system based on the provided
// configuration. It creates a structured JSON logger on stdout with the
// configured level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger, nil
}
