package feeds

import (
	"context"
	"log/slog"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/window"
)

// Release adapts one project's releases feed. The canonical project page
// travels on the group itself, next to the release items.
type Release struct {
	endpoint
	name    string
	homeURL string
}

var _ source.Adapter = (*Release)(nil)

func NewRelease(fetcher ports.FeedFetcher, name, feedURL, homeURL string, logger *slog.Logger) *Release {
	return &Release{
		endpoint: endpoint{fetcher: fetcher, url: feedURL, logger: logger},
		name:     name,
		homeURL:  homeURL,
	}
}

func (s *Release) Label() string { return s.name }

// Release notes are written in English regardless of the digest edition.
func (s *Release) Language() domain.Language { return domain.English }

func (s *Release) Fetch(ctx context.Context, w window.Window) domain.FeedGroup {
	group := domain.FeedGroup{Label: s.name, HomeURL: s.homeURL}
	for _, item := range s.load(ctx, w) {
		group.Items = append(group.Items, domain.FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
		})
	}
	return group
}
