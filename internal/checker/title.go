package checker

import (
	"unicode/utf8"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// shortTitleThreshold is the minimum trimmed title length (in runes)
// below which the title is flagged as too short to be descriptive.
const shortTitleThreshold = 10

// TitleCheck verifies that the page has a non-empty, reasonably
// descriptive <title> element. The title is the first thing screen
// readers announce, so a missing or vague one disorients users before
// they read any content.
type TitleCheck struct{}

// NewTitleCheck creates a new TitleCheck.
func NewTitleCheck() *TitleCheck {
	return &TitleCheck{}
}

// Name returns the check name.
func (c *TitleCheck) Name() string {
	return "title"
}

// Category returns the report category label.
func (c *TitleCheck) Category() string {
	return CategoryPageTitle
}

// Run examines the first <title> element.
// A missing title is terminal: the empty/short checks are skipped.
func (c *TitleCheck) Run(doc *htmldoc.Document) []model.Finding {
	title := doc.First("title")
	if title == nil {
		return []model.Finding{{
			Category:       c.Category(),
			Issue:          "Missing <title> element",
			Recommendation: `Add a concise, descriptive <title> for the page (e.g., "Product name – Brand").`,
			GuidelineRef:   refPageTitled,
		}}
	}

	text := title.Text()
	switch {
	case text == "":
		return []model.Finding{{
			Category:       c.Category(),
			Issue:          "Empty <title> element",
			Recommendation: "Provide meaningful text that describes the page’s purpose.",
			GuidelineRef:   refPageTitled,
		}}
	case utf8.RuneCountInString(text) < shortTitleThreshold:
		return []model.Finding{{
			Category:       c.Category(),
			Issue:          `Very short page title: "` + text + `"`,
			Recommendation: "Expand it to describe page content more clearly.",
			GuidelineRef:   refPageTitled,
		}}
	}

	return nil
}
