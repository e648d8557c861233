package model

import "time"

// Report is the ordered result of one check run over one document.
// It is built once by the checker engine and never mutated afterwards;
// renderers only read it.
type Report struct {
	// Meta describes the document source and fetch outcome.
	Meta Metadata `json:"meta"`

	// Records holds one row per finding in fixed category order,
	// including the synthetic clean record for each finding-free
	// category. No reordering, deduplication, or sorting is applied.
	Records []Finding `json:"records"`

	// GeneratedAt is the report generation timestamp, stamped from the
	// engine's clock so that tests can freeze it.
	GeneratedAt time.Time `json:"generated_at"`

	// IssueCount is the number of real findings (clean records
	// excluded) across all categories.
	IssueCount int `json:"issue_count"`
}

// HasIssues reports whether any check produced a real finding.
func (r *Report) HasIssues() bool {
	return r.IssueCount > 0
}

// FindingsFor returns the records of a single category, including the
// clean record when the category produced no findings.
func (r *Report) FindingsFor(category string) []Finding {
	var records []Finding
	for _, rec := range r.Records {
		if rec.Category == category {
			records = append(records, rec)
		}
	}
	return records
}

// IssueCategories returns the labels of categories holding at least one
// real finding, in record order. Summaries report this count rather than
// the full category count, which is fixed.
func (r *Report) IssueCategories() []string {
	var categories []string
	for _, category := range r.Categories() {
		for _, rec := range r.FindingsFor(category) {
			if !rec.IsClean() {
				categories = append(categories, category)
				break
			}
		}
	}
	return categories
}

// Categories returns the distinct category labels in record order.
func (r *Report) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, rec := range r.Records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			categories = append(categories, rec.Category)
		}
	}
	return categories
}
