package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"console-bank/internal/config"
)

// New builds the application logger. Logs go to cfg.Logging.File as JSON when
// set, otherwise to stderr so they do not mix with the console menus: JSON in
// production, text elsewhere. The returned close func releases the log file.
func New(cfg *config.Config) (*slog.Logger, func() error, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := ParseLevel(cfg.Logging.Level)

	if cfg.Logging.File == "" {
		return NewWithWriter(stderr, level, cfg.IsProduction()), func() error { return nil }, nil
	}

	file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(file, level, true), file.Close, nil
}

// NewWithWriter builds a logger writing to w
func NewWithWriter(w io.Writer, level slog.Level, jsonFormat bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to error
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
