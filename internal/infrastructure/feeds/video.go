package feeds

import (
	"context"
	"log/slog"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/window"
)

// Video adapts one playlist feed. Playlist descriptions are boilerplate, so
// items carry title and link only.
type Video struct {
	endpoint
	label string
	lang  domain.Language
}

var _ source.Adapter = (*Video)(nil)

func NewVideo(fetcher ports.FeedFetcher, label, url string, lang domain.Language, logger *slog.Logger) *Video {
	return &Video{
		endpoint: endpoint{fetcher: fetcher, url: url, logger: logger},
		label:    label,
		lang:     lang,
	}
}

func (s *Video) Label() string { return s.label }

func (s *Video) Language() domain.Language { return s.lang }

func (s *Video) Fetch(ctx context.Context, w window.Window) domain.FeedGroup {
	group := domain.FeedGroup{Label: s.label}
	for _, item := range s.load(ctx, w) {
		group.Items = append(group.Items, domain.FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PublishedAt,
		})
	}
	return group
}
