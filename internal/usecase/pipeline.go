package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
	"github.com/mats16/daily-aws-news/internal/render"
	"github.com/mats16/daily-aws-news/internal/source"
	"github.com/mats16/daily-aws-news/internal/tags"
	"github.com/mats16/daily-aws-news/internal/window"
)

// contentType is what every stored digest is served as.
const contentType = "text/markdown; charset=utf-8"

const defaultTranslateTimeout = 10 * time.Second

// Request is one digest invocation, as handed over by the trigger.
type Request struct {
	ExecutionTime time.Time
	Language      domain.Language
	Draft         bool
	RunID         string
}

// Result carries the rendered artifact and the downstream summary.
type Result struct {
	Content []byte
	Summary domain.Summary
}

// SectionSources groups the adapters rendered under one body section.
type SectionSources struct {
	Kind    domain.SectionKind
	Entries []SourceEntry
}

// SourceEntry binds an adapter to the digest editions it appears in.
// An empty edition list means every edition.
type SourceEntry struct {
	Adapter  source.Adapter
	Editions []domain.Language
}

func (e SourceEntry) appearsIn(lang domain.Language) bool {
	if len(e.Editions) == 0 {
		return true
	}
	for _, l := range e.Editions {
		if l == lang {
			return true
		}
	}
	return false
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Announcements    source.Adapter
	Sections         []SectionSources
	Translator       ports.Translator
	Store            ports.ContentStore
	Downstream       ports.Downstream
	ContentPrefix    string
	TranslateTimeout time.Duration
	Logger           *slog.Logger
}

// Pipeline implements the digest workflow: compute the window, collect the
// sources, translate, assemble, render, store, and hand off downstream.
type Pipeline struct {
	announcements    source.Adapter
	sections         []SectionSources
	translator       ports.Translator
	store            ports.ContentStore
	downstream       ports.Downstream
	contentPrefix    string
	translateTimeout time.Duration
	logger           *slog.Logger
}

// NewPipeline constructs the orchestration component. A nil Store or
// Downstream disables that stage; a nil Translator leaves all text in its
// source language.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	timeout := deps.TranslateTimeout
	if timeout <= 0 {
		timeout = defaultTranslateTimeout
	}
	return &Pipeline{
		announcements:    deps.Announcements,
		sections:         deps.Sections,
		translator:       deps.Translator,
		store:            deps.Store,
		downstream:       deps.Downstream,
		contentPrefix:    deps.ContentPrefix,
		translateTimeout: timeout,
		logger:           logger,
	}
}

// Run executes one digest request end to end. Individual sources and
// translation calls degrade without failing the run; an item landing
// outside the computed window is a defect and aborts the whole request.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if !req.Language.Valid() {
		return Result{}, fmt.Errorf("unsupported language %q", req.Language)
	}

	// Times round-trip through object metadata as RFC3339, so anything
	// finer than a second would be lost on the first re-render.
	execTime := req.ExecutionTime.UTC().Truncate(time.Second)

	w := window.Compute(execTime, req.Language)
	if err := w.Validate(); err != nil {
		return Result{}, fmt.Errorf("compute window: %w", err)
	}

	logger := p.logger.With("lang", req.Language, "window", w.Display)
	if req.RunID != "" {
		logger = logger.With("run", req.RunID)
	}

	announcements := p.collectAnnouncements(ctx, logger, req.Language, w)
	sections := p.collectSections(ctx, logger, req.Language, w)

	if err := verifyBounds(w, announcements, sections); err != nil {
		return Result{}, err
	}

	path := p.destinationPath(req.Language, execTime)
	date := p.resolveDate(ctx, logger, path, execTime)

	doc := domain.Document{
		FrontMatter: domain.FrontMatter{
			Draft:       req.Draft,
			IsCJK:       req.Language.IsCJK(),
			Title:       req.Language.DigestTitle(execTime),
			Description: req.Language.DigestDescription(w.Display),
			Date:        date,
			LastMod:     execTime,
			Categories:  domain.DigestCategories,
			Series:      domain.DigestSeries,
			Tags:        tags.Collect(announcements),
		},
		AnnouncementsHeading: domain.SectionAnnouncements.Heading(req.Language),
		Announcements:        announcements,
		Sections:             sections,
	}

	content, err := render.Render(doc)
	if err != nil {
		return Result{}, fmt.Errorf("render digest: %w", err)
	}

	summary := domain.Summary{
		Language:      req.Language,
		Title:         doc.FrontMatter.Title,
		Description:   doc.FrontMatter.Description,
		WindowDisplay: w.Display,
		Path:          path,
	}

	if p.store != nil {
		meta := objectMetadata(doc.FrontMatter, req.RunID)
		if err := p.store.Put(ctx, path, content, contentType, meta); err != nil {
			return Result{}, fmt.Errorf("store digest %s: %w", path, err)
		}
		logger.Info("digest stored",
			"path", path,
			"announcements", len(announcements),
			"sections", len(sections),
			"tags", len(doc.FrontMatter.Tags))
	}

	if p.downstream != nil {
		if err := p.downstream.Publish(ctx, summary); err != nil {
			return Result{}, fmt.Errorf("publish summary: %w", err)
		}
	}

	return Result{Content: content, Summary: summary}, nil
}

func (p *Pipeline) collectAnnouncements(ctx context.Context, logger *slog.Logger, lang domain.Language, w window.Window) []domain.FeedItem {
	if p.announcements == nil {
		return nil
	}
	group := p.announcements.Fetch(ctx, w)
	items := group.Items
	if p.translator != nil && p.announcements.Language() != lang {
		items = p.translateSummaries(ctx, logger, items, p.announcements.Language(), lang)
	}
	return items
}

func (p *Pipeline) collectSections(ctx context.Context, logger *slog.Logger, lang domain.Language, w window.Window) []domain.Section {
	var sections []domain.Section
	for _, sec := range p.sections {
		var groups []domain.FeedGroup
		for _, entry := range sec.Entries {
			if !entry.appearsIn(lang) {
				continue
			}
			group := entry.Adapter.Fetch(ctx, w)
			if len(group.Items) == 0 {
				logger.Debug("group empty, omitting", "label", group.Label)
				continue
			}
			if p.translator != nil && entry.Adapter.Language() != lang {
				group.Items = p.translateTitles(ctx, logger, group.Items, entry.Adapter.Language(), lang)
			}
			groups = append(groups, group)
		}
		if len(groups) == 0 {
			continue
		}
		sections = append(sections, domain.Section{
			Heading: sec.Kind.Heading(lang),
			Groups:  groups,
		})
	}
	return sections
}

// translateSummaries returns a fresh slice; the input items are never
// mutated, so adapters and concurrent editions cannot observe each other's
// translations.
func (p *Pipeline) translateSummaries(ctx context.Context, logger *slog.Logger, items []domain.FeedItem, from, to domain.Language) []domain.FeedItem {
	if len(items) == 0 {
		return items
	}
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Summary
	}
	translated := translateBatch(ctx, p.translator, logger, texts, from, to, p.translateTimeout)

	out := make([]domain.FeedItem, len(items))
	for i, item := range items {
		item.Summary = translated[i]
		out[i] = item
	}
	return out
}

func (p *Pipeline) translateTitles(ctx context.Context, logger *slog.Logger, items []domain.FeedItem, from, to domain.Language) []domain.FeedItem {
	if len(items) == 0 {
		return items
	}
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Title
	}
	translated := translateBatch(ctx, p.translator, logger, texts, from, to, p.translateTimeout)

	out := make([]domain.FeedItem, len(items))
	for i, item := range items {
		item.Title = translated[i]
		out[i] = item
	}
	return out
}

// resolveDate keeps the first render's creation date across re-renders: a
// draft that later goes final must not move in the site's chronology. Any
// lookup trouble falls back to the execution time.
func (p *Pipeline) resolveDate(ctx context.Context, logger *slog.Logger, path string, fallback time.Time) time.Time {
	if p.store == nil {
		return fallback
	}
	meta, err := p.store.Metadata(ctx, path)
	if err != nil {
		logger.Warn("metadata lookup failed, using execution time", "path", path, "error", err)
		return fallback
	}
	stored, ok := meta["date"]
	if !ok {
		return fallback
	}
	date, err := time.Parse(time.RFC3339, stored)
	if err != nil {
		logger.Warn("stored date unparsable, using execution time", "path", path, "value", stored, "error", err)
		return fallback
	}
	return date
}

// destinationPath derives the content key from the execution date. The
// Japanese edition carries the translation suffix; English is the site
// default.
func (p *Pipeline) destinationPath(lang domain.Language, execTime time.Time) string {
	name := "daily-aws-news-" + execTime.Format("2006-01-02")
	if lang == domain.Japanese {
		name += ".ja"
	}
	prefix := strings.TrimSuffix(p.contentPrefix, "/")
	if prefix == "" {
		return name + ".md"
	}
	return prefix + "/" + name + ".md"
}

// verifyBounds re-checks the window contract on everything that made it
// into the document. A violation here is a programming defect rather than a
// source hiccup, so the whole request fails.
func verifyBounds(w window.Window, announcements []domain.FeedItem, sections []domain.Section) error {
	check := func(label string, items []domain.FeedItem) error {
		for _, item := range items {
			if !w.Contains(item.PublishedAt) {
				return fmt.Errorf("item %q in group %q outside window %s", item.Title, label, w.Display)
			}
		}
		return nil
	}

	if err := check("announcements", announcements); err != nil {
		return err
	}
	for _, sec := range sections {
		for _, group := range sec.Groups {
			if err := check(group.Label, group.Items); err != nil {
				return err
			}
		}
	}
	return nil
}

func objectMetadata(fm domain.FrontMatter, runID string) map[string]string {
	meta := map[string]string{
		"draft":      strconv.FormatBool(fm.Draft),
		"date":       fm.Date.Format(time.RFC3339),
		"lastmod":    fm.LastMod.Format(time.RFC3339),
		"categories": jsonArray(fm.Categories),
		"series":     jsonArray(fm.Series),
		"tags":       jsonArray(fm.Tags),
	}
	if runID != "" {
		meta["run-id"] = runID
	}
	return meta
}

func jsonArray(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}
