package feeds

import (
	"context"
	"log/slog"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/window"
)

// endpoint carries what every adapter needs to pull one feed.
type endpoint struct {
	fetcher ports.FeedFetcher
	url     string
	logger  *slog.Logger
}

// load fetches and window-filters the endpoint. An unreachable or
// unparsable feed degrades to no items; the adapters turn that into an
// empty group rather than an error.
func (e endpoint) load(ctx context.Context, w window.Window) []domain.FeedItem {
	feed, err := e.fetcher.Fetch(ctx, e.url)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("source unavailable, skipping", "url", e.url, "error", err)
		}
		return nil
	}
	kept := source.FilterWindow(feed.Items, w)
	if e.logger != nil {
		e.logger.Debug("feed fetched", "url", e.url, "items", len(feed.Items), "kept", len(kept))
	}
	return kept
}
