package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// logConfig is the resolved logging setup. The terminal belongs to the UI, so
// logs go to a file or nowhere.
type logConfig struct {
	level   slog.Level
	logFile io.WriteCloser // nil when logging is disabled
}

// resolveLogConfig reads SCRIBE_LOG (file path) and SCRIBE_LOG_LEVEL through
// getenv. The caller must close logFile when it is non-nil.
func resolveLogConfig(getenv func(string) string) (logConfig, error) {
	var lc logConfig

	switch levelStr := strings.TrimSpace(getenv("SCRIBE_LOG_LEVEL")); strings.ToLower(levelStr) {
	case "debug":
		lc.level = slog.LevelDebug
	case "info", "":
		lc.level = slog.LevelInfo
	case "warn":
		lc.level = slog.LevelWarn
	case "error":
		lc.level = slog.LevelError
	default:
		return lc, fmt.Errorf("invalid log level: %s", levelStr)
	}

	if path := strings.TrimSpace(getenv("SCRIBE_LOG")); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return lc, fmt.Errorf("opening log file: %w", err)
		}
		lc.logFile = f
	}
	return lc, nil
}

func (lc logConfig) logger() *slog.Logger {
	var w io.Writer = io.Discard
	if lc.logFile != nil {
		w = lc.logFile
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lc.level}))
}
