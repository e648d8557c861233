package checker

import (
	"fmt"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// FormLabelCheck verifies that form controls have an associated label,
// either a <label for="id"> pointing at the control's id or a <label>
// ancestor wrapping the control. Hidden inputs are skipped: they are
// never presented to the user.
type FormLabelCheck struct{}

// NewFormLabelCheck creates a new FormLabelCheck.
func NewFormLabelCheck() *FormLabelCheck {
	return &FormLabelCheck{}
}

// Name returns the check name.
func (c *FormLabelCheck) Name() string {
	return "forms"
}

// Category returns the report category label.
func (c *FormLabelCheck) Category() string {
	return CategoryFormLabels
}

// Run collects all input, select, and textarea elements (in that
// order) and counts those without a label. A document with no form
// fields produces no findings.
func (c *FormLabelCheck) Run(doc *htmldoc.Document) []model.Finding {
	fields := doc.Find("input")
	fields = append(fields, doc.Find("select")...)
	fields = append(fields, doc.Find("textarea")...)
	if len(fields) == 0 {
		return nil
	}

	// Multiplicity is preserved but only existence matters below.
	labelsByFor := make(map[string]int)
	for _, label := range doc.Find("label") {
		if forAttr, ok := label.Attr("for"); ok && forAttr != "" {
			labelsByFor[forAttr]++
		}
	}

	missing := 0
	for _, field := range fields {
		if field.Tag() == "input" {
			if fieldType, _ := field.Attr("type"); fieldType == "hidden" {
				continue
			}
		}

		hasLabel := false
		if id, ok := field.Attr("id"); ok && id != "" && labelsByFor[id] > 0 {
			hasLabel = true
		}
		if !hasLabel && field.HasAncestor("label") {
			hasLabel = true
		}
		if !hasLabel {
			missing++
		}
	}

	if missing == 0 {
		return nil
	}
	return []model.Finding{{
		Category:       c.Category(),
		Issue:          fmt.Sprintf("%d form control(s) without an associated label", missing),
		Recommendation: `Use <label for="id"> or wrap controls in <label> so screen readers announce purpose.`,
		GuidelineRef:   refLabelsOrInstr,
	}}
}
