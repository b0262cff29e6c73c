package feeds

import (
	"context"
	"log/slog"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/window"
)

// WhatsNew adapts the announcement feed. Items keep their product
// categories for tag extraction, and summaries are flattened to plain text
// so they can be quoted verbatim.
type WhatsNew struct {
	endpoint
}

var _ source.Adapter = (*WhatsNew)(nil)

func NewWhatsNew(fetcher ports.FeedFetcher, url string, logger *slog.Logger) *WhatsNew {
	return &WhatsNew{endpoint{fetcher: fetcher, url: url, logger: logger}}
}

func (s *WhatsNew) Label() string { return "What's New" }

func (s *WhatsNew) Language() domain.Language { return domain.English }

func (s *WhatsNew) Fetch(ctx context.Context, w window.Window) domain.FeedGroup {
	group := domain.FeedGroup{Label: s.Label()}
	for _, item := range s.load(ctx, w) {
		item.Summary = sanitizeSummary(item.Summary)
		group.Items = append(group.Items, item)
	}
	return group
}
