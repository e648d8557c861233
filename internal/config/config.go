package config

import "time"

// Default configuration values.
const (
	// DefaultTimeout bounds each URL fetch. A single page fetch over a
	// reasonable connection completes well within 20 seconds; slower
	// sources are reported as fetch failures rather than hanging the
	// run.
	DefaultTimeout = 20 * time.Second

	// DefaultUserAgent mimics a desktop browser. Some sites answer
	// differently (or with 403) to obvious bot agents, which would
	// skew or abort the accessibility review.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0 Safari/537.36"

	// DefaultMaxBodySize caps the HTML body read at 10MB. Real pages
	// are far smaller; the cap prevents memory exhaustion from
	// unexpectedly large responses.
	DefaultMaxBodySize = 10 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "a11yscan"
)

// Config holds all configuration options for a check run.
//
// Design decision: We use a single flat struct instead of nested
// structs. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Source is the URL or local file path to check.
	Source string

	// Timeout is the per-request timeout for URL fetches.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent on URL fetches.
	UserAgent string

	// MaxBodySize caps the HTML body read, in bytes.
	MaxBodySize int64

	// OutputDir is the directory where generated report files are
	// written when no explicit report path is given.
	OutputDir string

	// ReportFile, when set, is the exact output path for the report.
	ReportFile string

	// JSONReport selects JSON output instead of the text table.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output instead of the text
	// table. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Stdout prints the report to standard output instead of writing
	// a file.
	Stdout bool

	// Verbose enables debug-level log output.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path. Empty
	// means search the default locations.
	ConfigFilePath string
}

// NewConfig returns a Config populated with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		OutputDir:   ".",
	}
}

// Validate checks the configuration for inconsistencies.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrNoSource
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
