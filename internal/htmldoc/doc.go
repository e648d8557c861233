// Package htmldoc provides a minimal read-only view of a parsed HTML
// document for accessibility checks.
//
// The package wraps golang.org/x/net/html behind a small capability set
// (tag lookup, attribute access, text extraction, ancestor traversal) so
// that check functions never depend on a specific parser library. Any
// parser producing an equivalent tree could be substituted behind this
// package without touching the checks.
package htmldoc
