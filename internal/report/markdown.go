package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/a11yscan/a11yscan/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for sharing results in issues, pull requests,
// and documentation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the report as a markdown document with a metadata
// table, an alert summarizing the outcome, and the findings table.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Basic Accessibility Report")
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + report.Meta.Source + "`"},
		{"Source type", string(report.Meta.Kind)},
	}
	if report.Meta.HasStatus() {
		rows = append(rows, []string{"HTTP status", fmt.Sprintf("%d", report.Meta.StatusCode)})
	}
	rows = append(rows, []string{"Generated at", report.GeneratedAt.Format(timestampLayout)})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.HasIssues() {
		md.Warningf("%d potential accessibility issue(s) detected across %d categories.",
			report.IssueCount, len(report.IssueCategories()))
	} else {
		md.Tip("No obvious issues found by the basic automated checks.")
	}
	md.PlainText("")

	md.H2("Findings")
	md.PlainText("")
	w.writeFindingsTable(md, report.Records)

	md.PlainText("")
	md.Note(disclaimerScope + " " + disclaimerAudit)

	return len(md.String()), md.Build()
}

// writeFindingsTable writes one table row per record, mirroring the
// text report's column set.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, records []model.Finding) {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = cellValues(rec)
	}

	md.Table(markdown.TableSet{
		Header: columns,
		Rows:   rows,
	})
}
