package feeds

import (
	"context"
	"log/slog"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/window"
)

// Blog adapts one editorial blog feed. Posts render as a linked title list,
// so bodies and categories are left behind here.
type Blog struct {
	endpoint
	label string
	lang  domain.Language
}

var _ source.Adapter = (*Blog)(nil)

func NewBlog(fetcher ports.FeedFetcher, label, url string, lang domain.Language, logger *slog.Logger) *Blog {
	return &Blog{
		endpoint: endpoint{fetcher: fetcher, url: url, logger: logger},
		label:    label,
		lang:     lang,
	}
}

func (s *Blog) Label() string { return s.label }

func (s *Blog) Language() domain.Language { return s.lang }

func (s *Blog) Fetch(ctx context.Context, w window.Window) domain.FeedGroup {
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
