package model

// None is the placeholder rendered for an absent recommendation or
// guideline reference.
const None = "-"

// NoIssuesText is the issue text of the synthetic record emitted for a
// category in which no check fired.
const NoIssuesText = "No obvious issues found in this category based on basic automated checks."

// Finding is a single issue detected by one accessibility check.
//
// Design decision: Checks return this three-field record directly
// rather than a formatted sentence with embedded "Recommendation:" and
// "[WCAG ...]" markers that the report layer would have to re-parse.
// The record form carries the same information without the fragile
// string-split step.
type Finding struct {
	// Category is the fixed report category label of the check that
	// produced the finding (e.g. "Page Title").
	Category string `json:"category"`

	// Issue is a human-readable description of the problem.
	Issue string `json:"issue"`

	// Recommendation is remediation guidance, or None when the check
	// has no specific guidance.
	Recommendation string `json:"recommendation"`

	// GuidelineRef is the WCAG success criterion citation
	// (e.g. "WCAG 2.4.2 Page Titled"), or None.
	GuidelineRef string `json:"wcag"`
}

// CleanFinding returns the synthetic "no issues" record for a category.
// Exactly one such record stands in for a category whose check produced
// zero findings, so every category always appears in the report.
func CleanFinding(category string) Finding {
	return Finding{
		Category:       category,
		Issue:          NoIssuesText,
		Recommendation: None,
		GuidelineRef:   None,
	}
}

// IsClean reports whether the finding is a synthetic "no issues" record
// rather than a real detected issue.
func (f Finding) IsClean() bool {
	return f.Issue == NoIssuesText && f.Recommendation == None && f.GuidelineRef == None
}
