package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/a11yscan/a11yscan/internal/model"
)

// sampleReport returns a report with a fixed timestamp and one finding
// per category plus clean rows, mirroring a typical scan result.
func sampleReport() *model.Report {
	return &model.Report{
		Meta: model.Metadata{
			Source: "https://example.com/page",
			Kind:   model.SourceURL,
		},
		Records: []model.Finding{
			{
				Category:       "Page Title",
				Issue:          "Missing <title> element",
				Recommendation: `Add a concise, descriptive <title> for the page (e.g., "Product name – Brand").`,
				GuidelineRef:   "WCAG 2.4.2 Page Titled",
			},
			model.CleanFinding("Headings"),
			{
				Category:       "Images (Alt Text)",
				Issue:          "2 image(s) missing alt attribute",
				Recommendation: `Add meaningful alt text for informative images, or alt="" for decorative ones.`,
				GuidelineRef:   "WCAG 1.1.1 Non-text Content",
			},
			model.CleanFinding("Links"),
			model.CleanFinding("Form Labels"),
		},
		GeneratedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		IssueCount:  2,
	}
}

// TestTextWriterWrite tests the plain-text table rendering.
func TestTextWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("header block", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		lines := strings.Split(out, "\n")
		if lines[0] != "Basic Accessibility Report (Tabular)" {
			t.Errorf("unexpected title line: %q", lines[0])
		}
		if lines[1] != strings.Repeat("=", 100) {
			t.Errorf("expected 100-char rule, got %d chars", len(lines[1]))
		}
		if lines[2] != "Source: https://example.com/page" {
			t.Errorf("unexpected source line: %q", lines[2])
		}
		if lines[3] != "Source type: url" {
			t.Errorf("unexpected source type line: %q", lines[3])
		}
		if lines[4] != "Generated at: 2024-03-15T10:30:00" {
			t.Errorf("unexpected generated-at line: %q", lines[4])
		}
		if lines[5] != "" {
			t.Errorf("expected blank line, got %q", lines[5])
		}
		if !strings.Contains(out, "does NOT guarantee WCAG/ADA compliance") {
			t.Error("missing scope disclaimer")
		}
		if !strings.Contains(out, "For a full audit, use professional tools and manual testing.") {
			t.Error("missing audit disclaimer")
		}
	})

	t.Run("http status line appears only when recorded", func(t *testing.T) {
		t.Parallel()

		report := sampleReport()
		report.Meta.StatusCode = 200

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "HTTP status: 200\nGenerated at:") {
			t.Error("expected HTTP status line before Generated at line")
		}

		buf.Reset()
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "HTTP status:") {
			t.Error("unexpected HTTP status line for file-like metadata")
		}
	})

	t.Run("table structure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(buf.String(), "\n")

		var headerIdx int
		for i, line := range lines {
			if strings.HasPrefix(line, "| Category ") {
				headerIdx = i
				break
			}
		}
		if headerIdx == 0 {
			t.Fatal("header row not found")
		}

		header := lines[headerIdx]
		above, below := lines[headerIdx-1], lines[headerIdx+1]
		if above != below {
			t.Errorf("header rules differ:\n%q\n%q", above, below)
		}
		if strings.Trim(above, "=") != "" {
			t.Errorf("header rule is not all '=': %q", above)
		}
		if utf8.RuneCountInString(above) != utf8.RuneCountInString(header) {
			t.Errorf("rule length %d != header row length %d",
				utf8.RuneCountInString(above), utf8.RuneCountInString(header))
		}

		// Five data rows, each followed by a '-' rule of the same length.
		rowLen := utf8.RuneCountInString(header)
		for i := 0; i < 5; i++ {
			row := lines[headerIdx+2+2*i]
			sep := lines[headerIdx+3+2*i]
			if utf8.RuneCountInString(row) != rowLen {
				t.Errorf("data row %d length %d, want %d: %q",
					i, utf8.RuneCountInString(row), rowLen, row)
			}
			if strings.Trim(sep, "-") != "" || utf8.RuneCountInString(sep) != rowLen {
				t.Errorf("bad separator after row %d: %q", i, sep)
			}
		}
	})

	t.Run("cell widths are consistent per column across all rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var widths []int
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.HasPrefix(line, "|") {
				continue
			}
			cells := strings.Split(strings.Trim(line, "|"), "|")
			if widths == nil {
				widths = make([]int, len(cells))
				for i, cell := range cells {
					widths[i] = utf8.RuneCountInString(cell)
				}
				continue
			}
			if len(cells) != len(widths) {
				t.Fatalf("row has %d cells, want %d: %q", len(cells), len(widths), line)
			}
			for i, cell := range cells {
				if utf8.RuneCountInString(cell) != widths[i] {
					t.Errorf("column %d: cell width %d, want %d: %q",
						i, utf8.RuneCountInString(cell), widths[i], cell)
				}
			}
		}
		if len(widths) != 4 {
			t.Fatalf("expected 4 columns, got %d", len(widths))
		}
	})

	t.Run("clean rows use placeholder cells", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(),
			"| Headings ") {
			t.Error("missing Headings row")
		}
		if !strings.Contains(buf.String(),
			"No obvious issues found in this category based on basic automated checks.") {
			t.Error("missing clean-row sentence")
		}
	})

	t.Run("trailing timestamp line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(buf.String(), "\n\nTimestamp: 2024-03-15T10:30:00\n") {
			t.Errorf("unexpected report tail: %q", buf.String()[len(buf.String())-50:])
		}
	})

	t.Run("output is deterministic for a frozen timestamp", func(t *testing.T) {
		t.Parallel()

		var first, second bytes.Buffer
		if _, err := NewTextWriter(&first).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := NewTextWriter(&second).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Error("two renders of the same report differ")
		}
	})

	t.Run("returned byte count matches output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewTextWriter(&buf).Write(sampleReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write returned %d, wrote %d bytes", n, buf.Len())
		}
	})
}

// TestColumnWidths tests that widths track the longest cell per column.
func TestColumnWidths(t *testing.T) {
	t.Parallel()

	t.Run("header labels set the minimum width", func(t *testing.T) {
		t.Parallel()

		widths := columnWidths(nil)
		want := []int{len("Category"), len("Issue"), len("Recommendation"), len("WCAG")}
		for i := range want {
			if widths[i] != want[i] {
				t.Errorf("column %d: expected width %d, got %d", i, want[i], widths[i])
			}
		}
	})

	t.Run("widths count runes not bytes", func(t *testing.T) {
		t.Parallel()

		records := []model.Finding{{
			Category:       "Page Title",
			Issue:          "Missing <title> element",
			Recommendation: "Add a concise title – brand second.",
			GuidelineRef:   "WCAG 2.4.2 Page Titled",
		}}
		widths := columnWidths(records)
		if widths[2] != utf8.RuneCountInString(records[0].Recommendation) {
			t.Errorf("expected rune width %d, got %d",
				utf8.RuneCountInString(records[0].Recommendation), widths[2])
		}
	})
}
