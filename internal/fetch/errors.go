package fetch

import "errors"

// Fetch failure taxonomy. All three are terminal for the current run:
// no retries are attempted and no report is produced.
//
// Design decision: We use package-level sentinel errors wrapped with
// fmt.Errorf so callers can branch with errors.Is() while the message
// still carries the HTTP status or underlying cause.
var (
	// ErrAccessRestricted is returned for HTTP 401 and 403 responses.
	// The page may require login, special headers, or block automated
	// access.
	ErrAccessRestricted = errors.New("access restricted")

	// ErrFetchFailed is returned for any other HTTP error status or a
	// transport-level failure (DNS, connection, timeout).
	ErrFetchFailed = errors.New("failed to fetch page")

	// ErrFileOpen is returned when a local HTML file cannot be read.
	ErrFileOpen = errors.New("error opening local file")
)
