package log

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the attribute value length cap applied when no
// explicit limit is given.
const DefaultMaxValueLen = 256

// truncationMarker is appended to values that were cut.
const truncationMarker = "..."

// TruncateHandler wraps an slog.Handler and caps long string attribute
// values before passing records to the underlying handler.
//
// Design decision: We use a handler wrapper rather than truncating at
// each call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can log document content without worrying about size
type TruncateHandler struct {
	// handler is the underlying slog handler that receives the
	// truncated records.
	handler slog.Handler

	// maxLen is the maximum attribute value length in runes.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given
// handler. A maxLen of zero or less selects DefaultMaxValueLen.
// If handler is nil, the returned TruncateHandler wraps
// slog.Default().Handler().
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's string attributes and passes it to the
// underlying handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new TruncateHandler whose underlying handler has
// the given (truncated) attributes.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	truncated := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		truncated[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(truncated), maxLen: h.maxLen}
}

// WithGroup returns a new TruncateHandler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr caps string attribute values; other kinds pass through
// unchanged.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}

	value := a.Value.String()
	if utf8.RuneCountInString(value) <= h.maxLen {
		return a
	}

	runes := []rune(value)
	return slog.String(a.Key, string(runes[:h.maxLen])+truncationMarker)
}
