package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured logger writing to w.
// Verbose mode enables debug-level output; otherwise only warnings and
// errors are logged. Attribute values are truncated to keep document
// content from flooding the output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncateHandler(handler, 0))
}
