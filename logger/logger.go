// Package logger builds the slog loggers used with the cookie jar.
package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"
)

// New returns a logger writing text records at or above level to w.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Console returns a logger writing to stderr, at debug level if the
// COOKIEJAR_DEBUG environment variable is set.
func Console() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("COOKIEJAR_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return New(os.Stderr, level)
}

// Discard returns a logger dropping every record.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}
