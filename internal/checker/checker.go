package checker

import (
	"time"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// Report category labels. These are fixed per check and appear verbatim
// in the Category column of the rendered report.
const (
	CategoryPageTitle  = "Page Title"
	CategoryHeadings   = "Headings"
	CategoryImages     = "Images (Alt Text)"
	CategoryLinks      = "Links"
	CategoryFormLabels = "Form Labels"
)

// WCAG success criterion citations referenced by the checks.
const (
	refPageTitled        = "WCAG 2.4.2 Page Titled"
	refInfoRelationships = "WCAG 1.3.1 Info and Relationships"
	refHeadingsLabels    = "WCAG 2.4.6 Headings and Labels"
	refNonTextContent    = "WCAG 1.1.1 Non-text Content"
	refLinkPurpose       = "WCAG 2.4.4 Link Purpose (In Context)"
	refLabelsOrInstr     = "WCAG 3.3.2 Labels or Instructions"
)

// Check is a single accessibility rule.
//
// Design decision: We use an interface rather than plain functions
// because:
//  1. The engine can log and report per-check using Name and Category
//  2. Checks can be registered or replaced individually in tests
//  3. It mirrors how other analyzers in this codebase are structured
type Check interface {
	// Name returns a short identifier used in logs.
	Name() string

	// Category returns the fixed report category label.
	Category() string

	// Run scans the document and returns findings. It is pure and
	// total: any well-formed document, including an empty one, yields
	// a (possibly empty) finding list and never an error.
	Run(doc *htmldoc.Document) []model.Finding
}

// Engine runs the registered checks in a fixed order and assembles
// their findings into a report.
type Engine struct {
	// checks run in registration order: Page Title, Headings,
	// Images (Alt Text), Links, Form Labels.
	checks []Check

	// now supplies the report timestamp. Injected so report generation
	// is deterministic under test.
	now func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the engine's time source. Tests use this to freeze
// the report timestamp.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine with all built-in checks registered in
// report order.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		now: time.Now,
		checks: []Check{
			NewTitleCheck(),
			NewHeadingCheck(),
			NewImageAltCheck(),
			NewLinkTextCheck(),
			NewFormLabelCheck(),
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Checks returns the registered checks in run order.
func (e *Engine) Checks() []Check {
	return e.checks
}

// Run executes every check against the document and returns the
// assembled report. A category whose check produces no findings
// contributes exactly one synthetic "no issues" record, so the report
// always covers all categories.
func (e *Engine) Run(doc *htmldoc.Document, meta model.Metadata) *model.Report {
	report := &model.Report{
		Meta:        meta,
		GeneratedAt: e.now(),
	}

	for _, check := range e.checks {
		findings := check.Run(doc)
		if len(findings) == 0 {
			report.Records = append(report.Records, model.CleanFinding(check.Category()))
			continue
		}
		report.Records = append(report.Records, findings...)
		report.IssueCount += len(findings)
	}

	return report
}
