package importer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy removes every element, leaving only text
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML reduces an HTML body to plain text
func StripHTML(body string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(body)))
}
