// Package ports defines the boundary interfaces the digest pipeline
// depends on. Infrastructure packages provide the implementations.
package ports

import (
	"context"

	"github.com/mats16/daily-aws-news/internal/domain"
)

// FeedFetcher retrieves and parses one feed endpoint into the uniform shape.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Feed, error)
}

// Translator converts one text between the two digest locales.
// Implementations must tolerate concurrent calls up to the batch ceiling.
type Translator interface {
	Translate(ctx context.Context, text string, source, target domain.Language) (string, error)
}

// ContentStore persists rendered digests and exposes the metadata a prior
// render left behind.
type ContentStore interface {
	// Metadata returns the stored metadata for key, or nil when no object
	// exists there yet.
	Metadata(ctx context.Context, key string) (map[string]string, error)
	Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error
}

// Downstream receives the digest summary once the artifact is in place.
type Downstream interface {
	Publish(ctx context.Context, summary domain.Summary) error
}
