// Package log provides logging for a11yscan, built on top of the
// standard slog package.
//
// The TruncateHandler caps long string attribute values before they
// reach the underlying handler. Checks and the fetch layer log document
// content (titles, link text, HTML snippets), and an unbounded page can
// otherwise flood the log output with a single attribute.
package log
