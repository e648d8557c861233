package checker

import (
	"fmt"
	"strings"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// ambiguousPhrases is the fixed set of link texts that carry no
// information about the link target when read out of context.
// Matching is done on trimmed, lower-cased visible text.
var ambiguousPhrases = map[string]bool{
	"click here": true,
	"here":       true,
	"read more":  true,
	"more":       true,
}

// LinkTextCheck verifies that anchors have meaningful visible text.
// Screen reader users often navigate by a list of links, so an empty
// link or one that reads "click here" gives them nothing to go on.
type LinkTextCheck struct{}

// NewLinkTextCheck creates a new LinkTextCheck.
func NewLinkTextCheck() *LinkTextCheck {
	return &LinkTextCheck{}
}

// Name returns the check name.
func (c *LinkTextCheck) Name() string {
	return "links"
}

// Category returns the report category label.
func (c *LinkTextCheck) Category() string {
	return CategoryLinks
}

// Run scans all <a> elements. Each anchor is classified as empty or
// ambiguous, never both; a document with no anchors produces no
// findings.
func (c *LinkTextCheck) Run(doc *htmldoc.Document) []model.Finding {
	anchors := doc.Find("a")
	if len(anchors) == 0 {
		return nil
	}

	var emptyLinks, ambiguous int
	for _, a := range anchors {
		text := strings.ToLower(a.Text())
		if text == "" {
			emptyLinks++
		} else if ambiguousPhrases[text] {
			ambiguous++
		}
	}

	var findings []model.Finding
	if emptyLinks > 0 {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf("%d link(s) with no visible text", emptyLinks),
			Recommendation: "Ensure each link has meaningful text or an accessible name (e.g., aria-label).",
			GuidelineRef:   refLinkPurpose,
		})
	}
	if ambiguous > 0 {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf("%d link(s) with ambiguous text (e.g., 'click here', 'more')", ambiguous),
			Recommendation: "Use link text that describes the destination or action (e.g., 'Download annual report').",
			GuidelineRef:   refLinkPurpose,
		})
	}

	return findings
}
