package domain

import "time"

// Fixed front matter taxonomies every digest carries.
var (
	DigestCategories = []string{"news"}
	DigestSeries     = []string{"daily-aws-news"}
)

// FeedItem is one entry adapted from any of the configured feed shapes.
type FeedItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
	Summary     string
	Categories  []string
}

// Feed is the raw result of one feed retrieval, before window filtering.
type Feed struct {
	Title string
	Items []FeedItem
}

// FeedGroup is a named collection of window-filtered items from one source.
// HomeURL, when set, links the group label itself rather than any item.
type FeedGroup struct {
	Label   string
	HomeURL string
	Items   []FeedItem
}

// Section is one rendered body section: a heading over one or more groups.
type Section struct {
	Heading string
	Groups  []FeedGroup
}

// FrontMatter is the metadata preamble of the rendered digest.
// Declaration order here is the serialization order.
type FrontMatter struct {
	Draft       bool      `json:"draft"`
	IsCJK       bool      `json:"isCJK"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	LastMod     time.Time `json:"lastmod"`
	Categories  []string  `json:"categories"`
	Series      []string  `json:"series"`
	Tags        []string  `json:"tags"`
}

// Document is a fully assembled digest, ready for rendering.
type Document struct {
	FrontMatter          FrontMatter
	AnnouncementsHeading string
	Announcements        []FeedItem
	Sections             []Section
}

// Summary is the normalized payload handed to the publish and thumbnail
// consumers after a digest is stored.
type Summary struct {
	Language      Language `json:"language"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	WindowDisplay string   `json:"windowDisplayText"`
	Path          string   `json:"destinationPath"`
}
