package model

import "strings"

// SourceKind distinguishes how a document source string is interpreted.
type SourceKind string

const (
	// SourceURL means the source is fetched over HTTP(S).
	SourceURL SourceKind = "url"

	// SourceFile means the source is read from the local filesystem.
	SourceFile SourceKind = "file"
)

// KindOf classifies a source string. Anything starting with http:// or
// https:// is a URL; everything else is treated as a local file path.
func KindOf(source string) SourceKind {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return SourceURL
	}
	return SourceFile
}

// Metadata describes where a document came from and how the fetch went.
// It is produced by the fetch layer alongside the parsed document and
// echoed into the report header.
type Metadata struct {
	// Source is the input string exactly as the user provided it.
	Source string `json:"source"`

	// Kind is the source classification (url or file).
	Kind SourceKind `json:"type"`

	// StatusCode is the HTTP status for URL fetches that received a
	// response. Zero means no status is available (file sources, or a
	// transport-level failure before any response).
	StatusCode int `json:"status_code,omitempty"`

	// Error is a human-readable failure message. Empty on success.
	// When set, no report is generated for this source.
	Error string `json:"error,omitempty"`
}

// HasStatus reports whether an HTTP status code was recorded.
func (m Metadata) HasStatus() bool {
	return m.StatusCode != 0
}
