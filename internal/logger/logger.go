// Package logger builds the structured loggers used by the commands.
// Verbose mode lowers the level to debug so lookups are traced to stderr.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
