package feeds

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sanitizeSummary flattens feed HTML into single-line plain text. The
// renderer quotes summaries inside a markdown blockquote, so markup and
// embedded newlines have to go.
func sanitizeSummary(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
