package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opskit/runbooks/internal/core/domain"
	"github.com/opskit/runbooks/internal/core/ports/driven"
	"github.com/opskit/runbooks/internal/core/ports/driving"
	"github.com/opskit/runbooks/internal/logger"
)

// Ensure RunbookService implements the interface.
var _ driving.RunbookService = (*RunbookService)(nil)

// RunbookService serves runbook queries over a lazily populated cache.
// The first query of any kind discovers the index; page content is
// fetched only when a specific runbook is requested.
type RunbookService struct {
	store     driven.RunbookStore
	extractor driven.Extractor
}

// NewRunbookService creates a new runbook service.
func NewRunbookService(store driven.RunbookStore, extractor driven.Extractor) *RunbookService {
	return &RunbookService{
		store:     store,
		extractor: extractor,
	}
}

// ensurePopulated fills an empty cache from the index. A discovery that
// yields nothing leaves the cache empty; callers render their own
// "no topics" answer.
func (s *RunbookService) ensurePopulated(ctx context.Context) error {
	empty, err := s.store.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("checking cache: %w", err)
	}
	if !empty {
		return nil
	}

	logger.Debug("Cache empty, discovering index")
	return s.discover(ctx)
}

// discover runs index discovery and upserts every summary by slug.
// Duplicate slugs from the index collapse here, last one wins.
func (s *RunbookService) discover(ctx context.Context) error {
	summaries := s.extractor.DiscoverIndex(ctx)
	for i := range summaries {
		if err := s.store.Upsert(ctx, &summaries[i]); err != nil {
			return fmt.Errorf("caching summary %q: %w", summaries[i].Slug, err)
		}
	}
	logger.Debug("Cached %d runbook summaries", len(summaries))
	return nil
}

// Topics returns every cached runbook summary in insertion order,
// discovering the index first if the cache is empty.
func (s *RunbookService) Topics(ctx context.Context) ([]domain.Runbook, error) {
	if s.store == nil || s.extractor == nil {
		return nil, domain.ErrNotImplemented
	}

	if err := s.ensurePopulated(ctx); err != nil {
		return nil, err
	}
	return s.store.All(ctx)
}

// ListTopics returns a formatted bullet list of all topics, prefixed
// with the total count.
func (s *RunbookService) ListTopics(ctx context.Context) (string, error) {
	logger.Section("List Topics")

	topics, err := s.Topics(ctx)
	if err != nil {
		return "", err
	}

	if len(topics) == 0 {
		return "No runbook topics found", nil
	}

	lines := make([]string, len(topics))
	for i := range topics {
		lines[i] = topicLine(&topics[i])
	}

	return fmt.Sprintf("Available Kubernetes runbook topics (%d total):\n\n", len(topics)) +
		strings.Join(lines, "\n"), nil
}

// Matches returns the runbooks whose title or slug contains the query,
// case-insensitively, in insertion order. An empty query matches every
// topic.
func (s *RunbookService) Matches(ctx context.Context, query string) ([]domain.Runbook, error) {
	topics, err := s.Topics(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matched []domain.Runbook
	for i := range topics {
		if strings.Contains(strings.ToLower(topics[i].Title), q) ||
			strings.Contains(strings.ToLower(topics[i].Slug), q) {
			matched = append(matched, topics[i])
		}
	}

	logger.Debug("Matched %d of %d topics", len(matched), len(topics))
	return matched, nil
}

// Search returns the Matches result as a formatted bullet list. The
// echoed query is lowercased, the same folding used to match.
func (s *RunbookService) Search(ctx context.Context, query string) (string, error) {
	logger.Section("Search Runbooks")
	logger.Debug("Query: %q", query)

	matched, err := s.Matches(ctx, query)
	if err != nil {
		return "", err
	}

	q := strings.ToLower(query)
	if len(matched) == 0 {
		return fmt.Sprintf("No runbooks found matching '%s'", q), nil
	}

	lines := make([]string, len(matched))
	for i := range matched {
		lines[i] = topicLine(&matched[i])
	}

	return fmt.Sprintf("Found %d runbooks matching '%s':\n\n", len(matched), q) +
		strings.Join(lines, "\n"), nil
}

// Fetch returns the full document for a slug, fetching page content on
// first access. A miss triggers one full re-discovery before giving up:
// the index may have grown since the cache was populated.
func (s *RunbookService) Fetch(ctx context.Context, slug string) (string, error) {
	logger.Section("Fetch Runbook")
	logger.Debug("Slug: %q", slug)

	if s.store == nil || s.extractor == nil {
		return "", domain.ErrNotImplemented
	}

	if strings.TrimSpace(slug) == "" {
		return "", fmt.Errorf("empty slug: %w", domain.ErrInvalidInput)
	}

	rb, err := s.lookup(ctx, slug)
	if err != nil {
		return "", err
	}

	if !rb.Populated() {
		rb, err = s.populate(ctx, rb)
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("# %s\n\n%s\n\nSource: %s", rb.Title, rb.Content, rb.URL), nil
}

// lookup finds a cached record by slug, re-running full index discovery
// once on a miss before reporting the slug unknown.
func (s *RunbookService) lookup(ctx context.Context, slug string) (*domain.Runbook, error) {
	rb, err := s.store.Get(ctx, slug)
	if err == nil {
		return rb, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	logger.Debug("Cache miss for %q, re-discovering index", slug)
	if err := s.discover(ctx); err != nil {
		return nil, err
	}

	rb, err = s.store.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("runbook %q: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	return rb, nil
}

// populate fetches page content for a summary-only record and caches
// the enriched result. The index link text survives as the title when
// the page itself has no heading.
func (s *RunbookService) populate(ctx context.Context, rb *domain.Runbook) (*domain.Runbook, error) {
	extracted := s.extractor.ExtractContent(ctx, rb.URL)
	if extracted == nil {
		return nil, fmt.Errorf("runbook %q content: %w", rb.Slug, domain.ErrFetchFailed)
	}

	if extracted.Title != "" {
		rb.Title = extracted.Title
	}
	rb.Content = extracted.Content
	rb.Description = extracted.Description

	if err := s.store.Upsert(ctx, rb); err != nil {
		return nil, fmt.Errorf("caching content for %q: %w", rb.Slug, err)
	}

	logger.Debug("Populated %q with %d characters", rb.Slug, len(rb.Content))
	return rb, nil
}

// topicLine renders one runbook as a listing bullet.
func topicLine(rb *domain.Runbook) string {
	return fmt.Sprintf("- **%s** (slug: %s)", rb.Title, rb.Slug)
}
