package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/a11yscan/a11yscan/internal/model"
)

// filenameStampLayout is the compact timestamp suffix in report file
// names.
const filenameStampLayout = "20060102_150405"

// urlSanitizer strips the scheme from a URL and replaces path and query
// delimiters so the result is safe as a single file name component.
var urlSanitizer = strings.NewReplacer(
	"https://", "",
	"http://", "",
	"/", "_",
	"?", "_",
	"&", "_",
	"=", "_",
)

// Filename returns the deterministic output file name for a report:
// a11y_report_<sanitized-source>_<timestamp><ext>. The extension must
// include the leading dot (".txt", ".md", ".json").
func Filename(meta model.Metadata, t time.Time, ext string) string {
	var safe string
	if meta.Kind == model.SourceURL {
		safe = urlSanitizer.Replace(meta.Source)
	} else {
		safe = strings.ReplaceAll(filepath.Base(meta.Source), ".", "_")
	}
	return fmt.Sprintf("a11y_report_%s_%s%s", safe, t.Format(filenameStampLayout), ext)
}
