package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// Fetcher loads HTML documents from URLs or local files.
//
// Design decision: We use a struct holding the http.Client rather than
// package-level functions because:
//  1. Client configuration (timeout, transport) stays consistent
//  2. Tests can inject a client pointing at an httptest server
//  3. Options like the User-Agent are set once, not per call
type Fetcher struct {
	// client performs HTTP requests. Its Timeout is set from the
	// fetcher timeout unless a custom client is injected.
	client *http.Client

	// userAgent is sent on URL fetches. The default mimics a desktop
	// browser: some sites answer differently or not at all to obvious
	// bot agents, which would skew the accessibility review.
	userAgent string

	// maxBodySize caps the response body read to bound memory use.
	maxBodySize int64

	// timeout is the per-request HTTP timeout.
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent sets a custom User-Agent header for URL fetches.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithHTTPClient injects a custom HTTP client. The client's own timeout
// is used as-is; WithTimeout has no effect on an injected client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// New creates a Fetcher with browser-like defaults: 20 second timeout,
// 10MB body cap.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/120.0 Safari/537.36",
		maxBodySize: 10 * 1024 * 1024, // 10MB
		timeout:     20 * time.Second,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}

	return f
}

// Fetch loads and parses the HTML document named by source.
// On failure it returns a nil document, metadata with the Error field
// set, and an error matching one of the package sentinels.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*htmldoc.Document, model.Metadata, error) {
	meta := model.Metadata{
		Source: source,
		Kind:   model.KindOf(source),
	}

	if meta.Kind == model.SourceURL {
		return f.fetchURL(ctx, source, meta)
	}
	return f.fetchFile(source, meta)
}

// fetchURL performs a single GET request and parses the response body.
// A single attempt is made; there is no retry logic.
func (f *Fetcher) fetchURL(ctx context.Context, source string, meta model.Metadata) (*htmldoc.Document, model.Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		meta.Error = fmt.Sprintf("error fetching URL: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		meta.Error = fmt.Sprintf("error fetching URL: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	meta.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		meta.Error = fmt.Sprintf(
			"access restricted (HTTP %d): the page may require login, special headers, or is blocked for automated access",
			resp.StatusCode)
		return nil, meta, fmt.Errorf("%w (HTTP %d)", ErrAccessRestricted, resp.StatusCode)
	case resp.StatusCode >= 400 && resp.StatusCode < 600:
		meta.Error = fmt.Sprintf("failed to fetch page (HTTP %d)", resp.StatusCode)
		return nil, meta, fmt.Errorf("%w (HTTP %d)", ErrFetchFailed, resp.StatusCode)
	}

	// Decode to UTF-8 based on the Content-Type header and in-document
	// hints before parsing; pages are not always served as UTF-8.
	body := io.LimitReader(resp.Body, f.maxBodySize)
	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		meta.Error = fmt.Sprintf("error decoding response body: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	doc, err := htmldoc.Parse(decoded)
	if err != nil {
		meta.Error = fmt.Sprintf("error parsing HTML: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return doc, meta, nil
}

// fetchFile reads and parses a local HTML file.
func (f *Fetcher) fetchFile(source string, meta model.Metadata) (*htmldoc.Document, model.Metadata, error) {
	file, err := os.Open(source) //nolint:gosec // User-provided file path is intentional
	if err != nil {
		meta.Error = fmt.Sprintf("error opening local file: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	defer file.Close()

	doc, err := htmldoc.Parse(io.LimitReader(file, f.maxBodySize))
	if err != nil {
		meta.Error = fmt.Sprintf("error parsing HTML: %v", err)
		return nil, meta, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}

	return doc, meta, nil
}
