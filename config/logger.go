package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide slog.Logger. Production gets a JSON
// handler so log collectors can parse records; everywhere else gets text.
// LOG_LEVEL selects the minimum level (debug, info, warn, error), case
// insensitive, defaulting to info.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel()}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
