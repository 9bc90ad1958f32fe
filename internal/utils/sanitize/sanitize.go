// Package sanitize strips markup from note text when SANITIZE_HTML is on.
// Notes are stored verbatim by default.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute. A bluemonday.Policy is read-only
// once built, so never call AddAttr/AllowElements on it after init.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// Clean strips HTML, unescapes entities and collapses runs of spaces
// on each line, keeping line breaks.
//
//   - "<p>hi</p>" -> "hi"
//   - "<b>a</b> <b>b</b>" -> "a b"
//   - "**markdown** text" -> "**markdown** text"
func Clean(s string) string {
	out := strings.TrimSpace(strict.Sanitize(s))
	out = html.UnescapeString(out)
	out = strings.ReplaceAll(out, "\u00a0", " ")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
