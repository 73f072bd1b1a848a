package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on w. verbose lowers the level to debug,
// which surfaces the generator's per-call record.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
