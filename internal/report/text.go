package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a11yscan/a11yscan/internal/model"
)

// timestampLayout renders timestamps in ISO-8601 form at second
// precision, both in the header block and the trailing timestamp line.
const timestampLayout = "2006-01-02T15:04:05"

// reportTitle is the fixed first line of the text report.
const reportTitle = "Basic Accessibility Report (Tabular)"

// Disclaimer sentences printed in the report header.
const (
	disclaimerScope = "Note: This is a heuristic, partial check and does NOT guarantee WCAG/ADA compliance."
	disclaimerAudit = "For a full audit, use professional tools and manual testing."
)

// columns lists the table columns in render order.
var columns = []string{"Category", "Issue", "Recommendation", "WCAG"}

// TextWriter renders the bordered plain-text table report.
//
// Design decision: The table is rendered by hand rather than through a
// table library because the output format is fixed down to the byte:
// single-space cell padding, `=` rules around the header row, a `-`
// rule after every data row, and a rule length of sum(width+3)+1. No
// truncation or wrapping is applied.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the report header, the findings table, and the trailing
// timestamp line. Output is deterministic for a fixed GeneratedAt.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	now := report.GeneratedAt.Format(timestampLayout)

	lines := make([]string, 0, 12+2*len(report.Records))
	lines = append(lines, reportTitle)
	lines = append(lines, strings.Repeat("=", 100))
	lines = append(lines, "Source: "+report.Meta.Source)
	lines = append(lines, "Source type: "+string(report.Meta.Kind))
	if report.Meta.HasStatus() {
		lines = append(lines, fmt.Sprintf("HTTP status: %d", report.Meta.StatusCode))
	}
	lines = append(lines, "Generated at: "+now)
	lines = append(lines, "")
	lines = append(lines, disclaimerScope)
	lines = append(lines, disclaimerAudit)
	lines = append(lines, "")

	widths := columnWidths(report.Records)

	lines = append(lines, rule(widths, "="))
	lines = append(lines, formatRow(widths, columns))
	lines = append(lines, rule(widths, "="))
	for _, rec := range report.Records {
		lines = append(lines, formatRow(widths, cellValues(rec)))
		lines = append(lines, rule(widths, "-"))
	}

	text := strings.Join(lines, "\n") + fmt.Sprintf("\n\nTimestamp: %s\n", now)
	return w.output.Write([]byte(text))
}

// columnWidths computes each column's width as the maximum rune length
// among the header label and every record's value in that column.
func columnWidths(records []model.Finding) []int {
	widths := make([]int, len(columns))
	for i, header := range columns {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, rec := range records {
		for i, value := range cellValues(rec) {
			if n := utf8.RuneCountInString(value); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// cellValues returns a record's values in column order.
func cellValues(f model.Finding) []string {
	return []string{f.Category, f.Issue, f.Recommendation, f.GuidelineRef}
}

// formatRow renders one table row: each cell padded with one leading
// and one trailing space and left-justified to its column width, cells
// separated and bordered by `|`.
func formatRow(widths []int, values []string) string {
	cells := make([]string, len(values))
	for i, value := range values {
		cells[i] = " " + leftJustify(value, widths[i]) + " "
	}
	return "|" + strings.Join(cells, "|") + "|"
}

// leftJustify pads s with trailing spaces to the given rune width.
func leftJustify(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// rule renders a horizontal separator line. Its length is the sum of
// (column width + 3) over all columns, plus 1 for the leading border.
func rule(widths []int, char string) string {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return strings.Repeat(char, total)
}
