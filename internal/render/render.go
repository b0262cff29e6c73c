// Package render serializes an assembled digest into its stored form.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mats16/daily-aws-news/internal/domain"
)

// Render produces the artifact: a single-line JSON front matter followed by
// the markdown body. Announcements render as bold linked titles with their
// summaries quoted underneath; every other section renders bulleted titles
// under a per-group sub-heading. The announcements heading always appears,
// even over an empty day, so the artifact shape stays stable for the site
// build.
func Render(doc domain.Document) ([]byte, error) {
	var buf bytes.Buffer

	front, err := json.Marshal(doc.FrontMatter)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}
	buf.Write(front)
	buf.WriteString("\n\n")

	buf.WriteString("## " + doc.AnnouncementsHeading + "\n")
	for _, item := range doc.Announcements {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "**[%s](%s)**\n", item.Title, item.Link)
		if item.Summary != "" {
			fmt.Fprintf(&buf, "> %s\n", item.Summary)
		}
	}

	for _, section := range doc.Sections {
		buf.WriteString("\n## " + section.Heading + "\n")
		for _, group := range section.Groups {
			buf.WriteString("\n")
			if group.HomeURL != "" {
				fmt.Fprintf(&buf, "### [%s](%s)\n", group.Label, group.HomeURL)
			} else {
				fmt.Fprintf(&buf, "### %s\n", group.Label)
			}
			for _, item := range group.Items {
				fmt.Fprintf(&buf, "- [%s](%s)\n", item.Title, item.Link)
			}
		}
	}

	return buf.Bytes(), nil
}
