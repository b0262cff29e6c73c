// Package feeds implements the source adapters over RSS and Atom endpoints.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/mats16/daily-aws-news/internal/config"
	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
)

const userAgent = "daily-aws-news/1.0"

// Fetcher retrieves RSS and Atom endpoints through a shared parser.
type Fetcher struct {
	parser *gofeed.Parser
}

var _ ports.FeedFetcher = (*Fetcher)(nil)

// NewFetcher wires the HTTP client all feed requests go through. A nil
// client gets a default bounded by config.DefaultFetchTimeout.
//
// gofeed installs its translators and client lazily on the first parse,
// and the editions fetch through one Fetcher concurrently, so every
// parser field is set here and never written again.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: config.DefaultFetchTimeout}
	}
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent
	parser.RSSTranslator = &gofeed.DefaultRSSTranslator{}
	parser.AtomTranslator = &gofeed.DefaultAtomTranslator{}
	parser.JSONTranslator = &gofeed.DefaultJSONTranslator{}
	return &Fetcher{parser: parser}
}

// Fetch downloads and parses the feed at url. Entries without a published
// timestamp fall back to the updated one; entries with neither keep the zero
// time and are dropped later by the window filter.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.Feed, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}

	feed := &domain.Feed{
		Title: parsed.Title,
		Items: make([]domain.FeedItem, 0, len(parsed.Items)),
	}
	for _, entry := range parsed.Items {
		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}
		feed.Items = append(feed.Items, domain.FeedItem{
			Title:       strings.TrimSpace(entry.Title),
			Link:        entry.Link,
			PublishedAt: published,
			Summary:     entry.Description,
			Categories:  entry.Categories,
		})
	}
	return feed, nil
}
