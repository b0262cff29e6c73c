package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mats16/daily-aws-news/internal/domain"
)

func sampleFrontMatter() domain.FrontMatter {
	date := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	return domain.FrontMatter{
		Draft:       false,
		IsCJK:       true,
		Title:       "今日のAWS - 2024/06/05",
		Description: "2024/06/04 ~ 2024/06/05 (JST) のアップデート",
		Date:        date,
		LastMod:     date,
		Categories:  []string{"news"},
		Series:      []string{"daily-aws-news"},
		Tags:        []string{"amazon-ec2"},
	}
}

func TestRenderFrontMatterIsFirstLineJSON(t *testing.T) {
	t.Parallel()

	out, err := Render(domain.Document{
		FrontMatter:          sampleFrontMatter(),
		AnnouncementsHeading: "最新アップデート",
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	lines := strings.Split(string(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output shape:\n%s", out)
	}

	var fm map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &fm); err != nil {
		t.Fatalf("first line is not valid JSON: %v\n%s", err, lines[0])
	}
	if fm["isCJK"] != true {
		t.Errorf("isCJK = %v, want true", fm["isCJK"])
	}
	if fm["title"] != "今日のAWS - 2024/06/05" {
		t.Errorf("unexpected title: %v", fm["title"])
	}
	if _, ok := fm["tags"].([]any); !ok {
		t.Errorf("tags missing or not an array: %v", fm["tags"])
	}

	// Field order is fixed by the struct declaration.
	if !strings.HasPrefix(lines[0], `{"draft":false,"isCJK":true,`) {
		t.Errorf("front matter does not start with draft/isCJK: %s", lines[0])
	}

	if lines[1] != "" {
		t.Errorf("front matter must be followed by a blank line, got %q", lines[1])
	}
}

func TestRenderAnnouncements(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		FrontMatter:          sampleFrontMatter(),
		AnnouncementsHeading: "What's New",
		Announcements: []domain.FeedItem{
			{Title: "EC2 update", Link: "https://example.com/ec2", Summary: "A new capability."},
			{Title: "No summary item", Link: "https://example.com/none"},
		},
	}

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	body := string(out)

	if !strings.Contains(body, "## What's New\n") {
		t.Error("missing announcements heading")
	}
	if !strings.Contains(body, "**[EC2 update](https://example.com/ec2)**\n> A new capability.\n") {
		t.Errorf("announcement not rendered as title plus quoted summary:\n%s", body)
	}
	if strings.Contains(body, "> \n") || strings.Contains(body, "**[No summary item](https://example.com/none)**\n>") {
		t.Errorf("empty summary must not render a quote line:\n%s", body)
	}
}

func TestRenderSections(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		FrontMatter:          sampleFrontMatter(),
		AnnouncementsHeading: "What's New",
		Sections: []domain.Section{
			{
				Heading: "Open Source Projects",
				Groups: []domain.FeedGroup{
					{
						Label:   "aws/aws-cdk",
						HomeURL: "https://github.com/aws/aws-cdk",
						Items: []domain.FeedItem{
							{Title: "v2.100.0", Link: "https://github.com/aws/aws-cdk/releases/tag/v2.100.0"},
						},
					},
					{
						Label: "AWS News Blog",
						Items: []domain.FeedItem{
							{Title: "Weekly roundup", Link: "https://aws.amazon.com/blogs/aws/weekly/"},
						},
					},
				},
			},
		},
	}

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	body := string(out)

	if !strings.Contains(body, "## Open Source Projects\n") {
		t.Error("missing section heading")
	}
	if !strings.Contains(body, "### [aws/aws-cdk](https://github.com/aws/aws-cdk)\n") {
		t.Errorf("group with home URL must link its label:\n%s", body)
	}
	if !strings.Contains(body, "### AWS News Blog\n") {
		t.Errorf("group without home URL must render a plain label:\n%s", body)
	}
	if !strings.Contains(body, "- [v2.100.0](https://github.com/aws/aws-cdk/releases/tag/v2.100.0)\n") {
		t.Errorf("section items must render as linked bullets:\n%s", body)
	}
}

func TestRenderEmptyDigestKeepsAnnouncementsHeading(t *testing.T) {
	t.Parallel()

	out, err := Render(domain.Document{
		FrontMatter:          sampleFrontMatter(),
		AnnouncementsHeading: "最新アップデート",
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	body := string(out)

	if !strings.Contains(body, "## 最新アップデート\n") {
		t.Error("announcements heading must render even with no items")
	}
	if strings.Count(body, "## ") != 1 {
		t.Errorf("no other headings expected:\n%s", body)
	}
	if strings.Contains(body, "###") || strings.Contains(body, "- [") {
		t.Errorf("empty digest must not render groups or bullets:\n%s", body)
	}
}
