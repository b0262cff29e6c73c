package domain

import (
	"testing"
	"time"
)

func TestLanguageValid(t *testing.T) {
	t.Parallel()

	if !Japanese.Valid() || !English.Valid() {
		t.Error("supported editions must be valid")
	}
	if Language("fr").Valid() || Language("").Valid() {
		t.Error("unknown editions must be invalid")
	}
}

func TestLanguageLocaleDetails(t *testing.T) {
	t.Parallel()

	if !Japanese.IsCJK() || English.IsCJK() {
		t.Error("only the Japanese edition is CJK")
	}
	if Japanese.ZoneLabel() != "JST" || English.ZoneLabel() != "UTC" {
		t.Error("unexpected zone labels")
	}

	// UTC midnight renders as the same calendar date in Tokyo.
	day := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	if got := day.In(Japanese.Location()).Format(Japanese.DateLayout()); got != "2024/06/05" {
		t.Errorf("ja date = %s", got)
	}
	if got := day.In(English.Location()).Format(English.DateLayout()); got != "2024-06-05" {
		t.Errorf("en date = %s", got)
	}

	// Late-evening UTC crosses into the next Tokyo day.
	evening := time.Date(2024, time.June, 5, 23, 0, 0, 0, time.UTC)
	if got := evening.In(Japanese.Location()).Format(Japanese.DateLayout()); got != "2024/06/06" {
		t.Errorf("ja evening date = %s", got)
	}
}

func TestDigestTitleAndDescription(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

	if got := English.DigestTitle(day); got != "Daily AWS News - 2024-06-05" {
		t.Errorf("en title = %q", got)
	}
	if got := Japanese.DigestTitle(day); got != "今日のAWS - 2024/06/05" {
		t.Errorf("ja title = %q", got)
	}

	// 16:00 UTC is already the next day in Tokyo; the title still names
	// the UTC day the destination path uses.
	evening := time.Date(2024, time.June, 5, 16, 0, 0, 0, time.UTC)
	if got := Japanese.DigestTitle(evening); got != "今日のAWS - 2024/06/05" {
		t.Errorf("ja evening title = %q", got)
	}

	en := English.DigestDescription("2024-06-04 ~ 2024-06-05 (UTC)")
	if en != "A roundup of AWS updates announced 2024-06-04 ~ 2024-06-05 (UTC)." {
		t.Errorf("en description = %q", en)
	}
	ja := Japanese.DigestDescription("2024/06/04 ~ 2024/06/05 (JST)")
	if ja == "" || ja == en {
		t.Errorf("ja description = %q", ja)
	}
}

func TestSectionHeadings(t *testing.T) {
	t.Parallel()

	if SectionAnnouncements.Heading(English) != "What's New" {
		t.Errorf("en announcements heading = %q", SectionAnnouncements.Heading(English))
	}
	if SectionAnnouncements.Heading(Japanese) != "最新アップデート" {
		t.Errorf("ja announcements heading = %q", SectionAnnouncements.Heading(Japanese))
	}
	for _, kind := range []SectionKind{SectionVideos, SectionBlogs, SectionProjects} {
		if kind.Heading(Japanese) == "" || kind.Heading(English) == "" {
			t.Errorf("section %d missing a heading", kind)
		}
	}
}
