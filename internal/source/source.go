// Package source defines the contract feed adapters implement and the
// window filtering they share.
package source

import (
	"context"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/window"
)

// Adapter turns one configured feed endpoint into a window-filtered group.
//
// Fetch never returns an error: an unreachable or unparsable source degrades
// to an empty group and reports through the adapter's logger, so one dead
// feed cannot take the whole digest down.
type Adapter interface {
	// Label names the group as it appears in the rendered section.
	Label() string
	// Language is the native language of the source's text fields.
	Language() domain.Language
	Fetch(ctx context.Context, w window.Window) domain.FeedGroup
}

// FilterWindow keeps the items published inside w, preserving feed order.
// Items without a usable timestamp carry the zero time and fall outside any
// window, so they drop out here.
func FilterWindow(items []domain.FeedItem, w window.Window) []domain.FeedItem {
	var kept []domain.FeedItem
	for _, item := range items {
		if w.Contains(item.PublishedAt) {
			kept = append(kept, item)
		}
	}
	return kept
}
