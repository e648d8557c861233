package log

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewLogger tests logger construction and level filtering.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info and debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		if strings.Contains(out, "debug message") {
			t.Error("debug message should be suppressed")
		}
		if strings.Contains(out, "info message") {
			t.Error("info message should be suppressed")
		}
		if !strings.Contains(out, "warn message") {
			t.Error("warn message should be logged")
		}
		if !strings.Contains(out, "error message") {
			t.Error("error message should be logged")
		}
	})

	t.Run("verbose enables debug output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Error("debug message should be logged in verbose mode")
		}
	})

	t.Run("long attribute values are truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		long := strings.Repeat("x", DefaultMaxValueLen+50)
		logger.Info("fetched page", "body", long)

		out := buf.String()
		if strings.Contains(out, long) {
			t.Error("expected long value to be truncated")
		}
		if !strings.Contains(out, strings.Repeat("x", DefaultMaxValueLen)+"...") {
			t.Error("expected truncation marker after the cap")
		}
	})
}
