package checker

import (
	"fmt"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// headingTags lists the heading element names in level order.
// Headings are tag-matched by these fixed names, so the level digit is
// always valid.
var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// HeadingCheck verifies the document's heading structure: headings
// exist, exactly one h1 titles the page, and levels never skip (an h3
// directly after an h1 hides the missing h2 section from screen reader
// navigation).
type HeadingCheck struct{}

// NewHeadingCheck creates a new HeadingCheck.
func NewHeadingCheck() *HeadingCheck {
	return &HeadingCheck{}
}

// Name returns the check name.
func (c *HeadingCheck) Name() string {
	return "headings"
}

// Category returns the report category label.
func (c *HeadingCheck) Category() string {
	return CategoryHeadings
}

// Run scans all h1-h6 elements in document order.
// A document with no headings yields a single finding and nothing else.
// The level-skip scan stops at the first skip: later skips are usually
// consequences of the first and reporting them all would be noise.
func (c *HeadingCheck) Run(doc *htmldoc.Document) []model.Finding {
	headings := doc.Find(headingTags...)
	if len(headings) == 0 {
		return []model.Finding{{
			Category:       c.Category(),
			Issue:          "No heading elements (h1–h6) found",
			Recommendation: "Use headings to convey structure, starting with a single h1 that describes the page.",
			GuidelineRef:   refInfoRelationships,
		}}
	}

	var findings []model.Finding

	h1Count := 0
	for _, h := range headings {
		if h.Tag() == "h1" {
			h1Count++
		}
	}
	switch {
	case h1Count == 0:
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          "No <h1> heading found",
			Recommendation: "Add one main <h1> that describes the page’s primary topic.",
			GuidelineRef:   refInfoRelationships,
		})
	case h1Count > 1:
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf("%d <h1> headings found", h1Count),
			Recommendation: "Ideally use a single <h1> per page for the main title, and use h2–h6 for subsections.",
			GuidelineRef:   refInfoRelationships,
		})
	}

	// lastLevel zero means no heading has been seen yet; the first
	// heading can never be a skip regardless of its level.
	lastLevel := 0
	for _, h := range headings {
		level := headingLevel(h.Tag())
		if lastLevel != 0 && level > lastLevel+1 {
			findings = append(findings, model.Finding{
				Category:       c.Category(),
				Issue:          fmt.Sprintf("Heading level skip detected (from h%d to h%d)", lastLevel, level),
				Recommendation: "Avoid skipping heading levels; use nested levels in order (h2 after h1, then h3, etc.).",
				GuidelineRef:   refHeadingsLabels,
			})
			break
		}
		lastLevel = level
	}

	return findings
}

// headingLevel extracts the numeric level from a heading tag name.
func headingLevel(tag string) int {
	return int(tag[1] - '0')
}
