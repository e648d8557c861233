package checker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/a11yscan/a11yscan/internal/htmldoc"
	"github.com/a11yscan/a11yscan/internal/model"
)

// shortAltThreshold is the minimum trimmed alt-text length (in runes)
// below which non-empty alt text is flagged as too short to describe
// the image.
const shortAltThreshold = 3

// ImageAltCheck verifies that <img> elements carry usable alt text.
// Images are partitioned into three buckets: alt attribute absent,
// alt present but empty (alt=""), and alt present but shorter than the
// threshold after trimming. An image with empty alt counts only in the
// empty bucket, never in the short one.
type ImageAltCheck struct{}

// NewImageAltCheck creates a new ImageAltCheck.
func NewImageAltCheck() *ImageAltCheck {
	return &ImageAltCheck{}
}

// Name returns the check name.
func (c *ImageAltCheck) Name() string {
	return "images"
}

// Category returns the report category label.
func (c *ImageAltCheck) Category() string {
	return CategoryImages
}

// Run scans all <img> elements. A document with no images produces no
// findings. The "all images empty" and "some images empty" findings are
// mutually exclusive.
func (c *ImageAltCheck) Run(doc *htmldoc.Document) []model.Finding {
	images := doc.Find("img")
	if len(images) == 0 {
		return nil
	}

	var missing, empty, short int
	for _, img := range images {
		alt, ok := img.Attr("alt")
		switch {
		case !ok:
			missing++
		case alt == "":
			empty++
		case utf8.RuneCountInString(strings.TrimSpace(alt)) < shortAltThreshold:
			short++
		}
	}

	var findings []model.Finding
	if missing > 0 {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf("%d image(s) missing alt attribute", missing),
			Recommendation: `Add meaningful alt text for informative images, or alt="" for decorative ones.`,
			GuidelineRef:   refNonTextContent,
		})
	}
	if empty > 0 && empty == len(images) {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          `All images have empty alt=""`,
			Recommendation: "Ensure informative images have descriptive alt text; use empty alt only for purely decorative images.",
			GuidelineRef:   refNonTextContent,
		})
	} else if empty > 0 {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf(`%d image(s) with empty alt=""`, empty),
			Recommendation: "Confirm these are decorative; otherwise, provide descriptive alt text.",
			GuidelineRef:   refNonTextContent,
		})
	}
	if short > 0 {
		findings = append(findings, model.Finding{
			Category:       c.Category(),
			Issue:          fmt.Sprintf("%d image(s) with very short alt text", short),
			Recommendation: "Make alt text descriptive enough to convey the image’s purpose.",
			GuidelineRef:   refNonTextContent,
		})
	}

	return findings
}
