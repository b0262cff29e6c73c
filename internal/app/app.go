package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/mats16/daily-aws-news/internal/config"
	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/infrastructure/downstream"
	"github.com/mats16/daily-aws-news/internal/infrastructure/feeds"
	"github.com/mats16/daily-aws-news/internal/infrastructure/storage"
	"github.com/mats16/daily-aws-news/internal/infrastructure/translation"
	"github.com/mats16/daily-aws-news/internal/logging"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/usecase"
)

// Options toggles collaborator wiring per invocation mode.
type Options struct {
	// DryRun renders without persisting or notifying; the caller prints
	// the result instead.
	DryRun bool
}

// Application wires configuration to the digest pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, opts Options) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	httpClient := &http.Client{Timeout: cfg.Sources.FetchTimeoutDuration()}
	fetcher := feeds.NewFetcher(httpClient)

	announcements := feeds.NewWhatsNew(fetcher, cfg.Sources.WhatsNew.URL,
		baseLogger.With("component", "source.whatsnew"))
	sections := buildSections(cfg.Sources, fetcher, baseLogger)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	translator := translation.NewAmazon(translate.NewFromConfig(awsCfg))

	var store ports.ContentStore
	var down ports.Downstream
	if !opts.DryRun {
		if cfg.Site.Bucket == "" {
			return nil, fmt.Errorf("site bucket is not configured")
		}
		store = storage.New(s3.NewFromConfig(awsCfg), cfg.Site.Bucket)
		down = downstream.NewEmitter(os.Stdout)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Announcements:    announcements,
		Sections:         sections,
		Translator:       translator,
		Store:            store,
		Downstream:       down,
		ContentPrefix:    cfg.Site.ContentPrefix,
		TranslateTimeout: cfg.Translate.TimeoutDuration(),
		Logger:           baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Run performs a single digest execution.
func (a *Application) Run(ctx context.Context, req usecase.Request) (usecase.Result, error) {
	return a.pipeline.Run(ctx, req)
}

func buildSections(src config.SourcesConfig, fetcher ports.FeedFetcher, logger *slog.Logger) []usecase.SectionSources {
	videos := usecase.SectionSources{Kind: domain.SectionVideos}
	for _, v := range src.Videos {
		adapter := feeds.NewVideo(fetcher, v.Label, v.URL, domain.Language(v.Lang),
			logger.With("component", "source.video"))
		videos.Entries = append(videos.Entries, usecase.SourceEntry{
			Adapter:  adapter,
			Editions: editions(v.Editions),
		})
	}

	blogs := usecase.SectionSources{Kind: domain.SectionBlogs}
	for _, b := range src.Blogs {
		adapter := feeds.NewBlog(fetcher, b.Label, b.URL, domain.Language(b.Lang),
			logger.With("component", "source.blog"))
		blogs.Entries = append(blogs.Entries, usecase.SourceEntry{
			Adapter:  adapter,
			Editions: editions(b.Editions),
		})
	}

	projects := usecase.SectionSources{Kind: domain.SectionProjects}
	for _, p := range src.Projects {
		adapter := feeds.NewRelease(fetcher, p.Name, p.FeedURL, p.HomeURL,
			logger.With("component", "source.release"))
		projects.Entries = append(projects.Entries, usecase.SourceEntry{Adapter: adapter})
	}

	return []usecase.SectionSources{videos, blogs, projects}
}

func editions(labels []string) []domain.Language {
	out := make([]domain.Language, 0, len(labels))
	for _, label := range labels {
		out = append(out, domain.Language(label))
	}
	return out
}
