package checker

import (
	"strings"
	"testing"
	"time"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// parseDoc parses an HTML fragment for checker tests.
func parseDoc(t *testing.T, src string) *htmldoc.Document {
	t.Helper()

	doc, err := htmldoc.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return doc
}

// TestEngineRun tests the full check pipeline over a document.
func TestEngineRun(t *testing.T) {
	t.Parallel()

	t.Run("empty document reports missing title and headings", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine()
		report := engine.Run(parseDoc(t, ``), model.Metadata{Source: "empty.html", Kind: model.SourceFile})

		// Two real findings plus one clean record for each of the three
		// categories the empty document cannot trip.
		if len(report.Records) != 5 {
			t.Fatalf("expected 5 records, got %d: %+v", len(report.Records), report.Records)
		}
		if report.IssueCount != 2 {
			t.Errorf("expected 2 issues, got %d", report.IssueCount)
		}
		if report.Records[0].Issue != "Missing <title> element" {
			t.Errorf("unexpected first record: %q", report.Records[0].Issue)
		}
		if report.Records[1].Issue != "No heading elements (h1–h6) found" {
			t.Errorf("unexpected second record: %q", report.Records[1].Issue)
		}
		for _, rec := range report.Records[2:] {
			if !rec.IsClean() {
				t.Errorf("expected clean record, got %+v", rec)
			}
		}
	})

	t.Run("clean document produces one clean record per category", func(t *testing.T) {
		t.Parallel()

		src := `<html><head><title>Accessible example page</title></head>
<body><h1>Main</h1><h2>Section</h2>
<img src="a.png" alt="Team photo at the launch event">
<a href="/pricing">See pricing plans</a>
<label for="q">Search</label><input id="q" type="text">
</body></html>`

		engine := NewEngine()
		report := engine.Run(parseDoc(t, src), model.Metadata{Source: "clean.html", Kind: model.SourceFile})

		if report.HasIssues() {
			t.Fatalf("expected no issues, got %d: %+v", report.IssueCount, report.Records)
		}
		if len(report.Records) != 5 {
			t.Fatalf("expected 5 records, got %d", len(report.Records))
		}
		want := []string{
			CategoryPageTitle,
			CategoryHeadings,
			CategoryImages,
			CategoryLinks,
			CategoryFormLabels,
		}
		for i, rec := range report.Records {
			if rec.Category != want[i] {
				t.Errorf("record %d: expected category %q, got %q", i, want[i], rec.Category)
			}
			if !rec.IsClean() {
				t.Errorf("record %d: expected clean record, got %+v", i, rec)
			}
		}
	})

	t.Run("categories appear in fixed order with issues interleaved", func(t *testing.T) {
		t.Parallel()

		src := `<html><head><title>t</title></head>
<body><h1>a</h1><img src="x.png"><a href="/y">ok link text</a></body></html>`

		engine := NewEngine()
		report := engine.Run(parseDoc(t, src), model.Metadata{Source: "mixed.html", Kind: model.SourceFile})

		got := report.Categories()
		want := []string{
			CategoryPageTitle,
			CategoryHeadings,
			CategoryImages,
			CategoryLinks,
			CategoryFormLabels,
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d categories, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("category %d: expected %q, got %q", i, want[i], got[i])
			}
		}

		// Short title and missing alt each fire once.
		if report.IssueCount != 2 {
			t.Errorf("expected 2 issues, got %d", report.IssueCount)
		}
	})

	t.Run("injected clock stamps the report", func(t *testing.T) {
		t.Parallel()

		frozen := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		engine := NewEngine(WithClock(func() time.Time { return frozen }))

		report := engine.Run(parseDoc(t, ``), model.Metadata{Source: "x.html", Kind: model.SourceFile})
		if !report.GeneratedAt.Equal(frozen) {
			t.Errorf("expected GeneratedAt %v, got %v", frozen, report.GeneratedAt)
		}
	})

	t.Run("all built-in checks are registered", func(t *testing.T) {
		t.Parallel()

		engine := NewEngine()
		checks := engine.Checks()
		if len(checks) != 5 {
			t.Fatalf("expected 5 checks, got %d", len(checks))
		}
		names := []string{"title", "headings", "images", "links", "forms"}
		for i, check := range checks {
			if check.Name() != names[i] {
				t.Errorf("check %d: expected name %q, got %q", i, names[i], check.Name())
			}
		}
	})
}
