package domain

import "time"

// Language selects one of the two digest editions.
type Language string

const (
	Japanese Language = "ja"
	English  Language = "en"
)

// Japan has no daylight saving, so a fixed offset is exact and keeps the
// binary independent of the host tzdata.
var jst = time.FixedZone("JST", 9*60*60)

// Valid reports whether l is a supported edition.
func (l Language) Valid() bool {
	return l == Japanese || l == English
}

// IsCJK reports whether downstream rendering needs CJK-aware typography.
func (l Language) IsCJK() bool {
	return l == Japanese
}

// Location returns the timezone dates are presented in for this edition.
func (l Language) Location() *time.Location {
	if l == Japanese {
		return jst
	}
	return time.UTC
}

// ZoneLabel is the timezone label shown next to window display text.
func (l Language) ZoneLabel() string {
	if l == Japanese {
		return "JST"
	}
	return "UTC"
}

// DateLayout is the locale date layout used in titles and window text.
func (l Language) DateLayout() string {
	if l == Japanese {
		return "2006/01/02"
	}
	return "2006-01-02"
}

// DigestTitle builds the digest title for the given publication day,
// dated on the UTC calendar that destination paths are named from.
func (l Language) DigestTitle(day time.Time) string {
	formatted := day.UTC().Format(l.DateLayout())
	if l == Japanese {
		return "今日のAWS - " + formatted
	}
	return "Daily AWS News - " + formatted
}

// DigestDescription builds the digest description around the window text.
func (l Language) DigestDescription(windowDisplay string) string {
	if l == Japanese {
		return windowDisplay + " に発表されたAWSのアップデート情報をお届けします。"
	}
	return "A roundup of AWS updates announced " + windowDisplay + "."
}

// SectionKind enumerates the fixed body sections of a digest.
type SectionKind int

const (
	SectionAnnouncements SectionKind = iota
	SectionVideos
	SectionBlogs
	SectionProjects
)

var sectionHeadings = map[SectionKind]map[Language]string{
	SectionAnnouncements: {Japanese: "最新アップデート", English: "What's New"},
	SectionVideos:        {Japanese: "サービス別アップデート解説動画", English: "Featured Videos"},
	SectionBlogs:         {Japanese: "ブログ", English: "Blogs"},
	SectionProjects:      {Japanese: "オープンソースプロジェクト", English: "Open Source Projects"},
}

// Heading returns the localized heading for the section.
func (k SectionKind) Heading(lang Language) string {
	return sectionHeadings[k][lang]
}
