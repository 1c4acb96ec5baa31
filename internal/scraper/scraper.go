package scraper

import (
	"context"
	"fmt"
	"net/url"

	"github.com/opskit/runbooks/internal/core/domain"
	"github.com/opskit/runbooks/internal/core/ports/driven"
	"github.com/opskit/runbooks/internal/logger"
)

// DefaultBaseURL is the index page of the Kubernetes runbooks collection.
const DefaultBaseURL = "https://containersolutions.github.io/runbooks/posts/kubernetes/"

// Ensure Scraper implements the interface.
var _ driven.Extractor = (*Scraper)(nil)

// Scraper extracts runbook records from site markup.
// Fetching is delegated to the injected Fetcher so parsing stays
// testable without a network.
type Scraper struct {
	fetcher driven.Fetcher
	baseURL *url.URL
}

// New creates a Scraper rooted at baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func New(fetcher driven.Fetcher, baseURL string) (*Scraper, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse base URL: %w", err)
	}
	return &Scraper{fetcher: fetcher, baseURL: base}, nil
}

// BaseURL returns the index page URL the scraper is rooted at.
func (s *Scraper) BaseURL() string {
	return s.baseURL.String()
}

// DiscoverIndex fetches the index page and returns summary records for
// every qualifying runbook link, in document order. Failures degrade to
// an empty slice.
func (s *Scraper) DiscoverIndex(ctx context.Context) []domain.Runbook {
	markup, err := s.fetcher.Fetch(ctx, s.baseURL.String())
	if err != nil {
		logger.Error("Index fetch failed: %v", err)
		return nil
	}

	runbooks, err := parseIndex(markup, s.baseURL)
	if err != nil {
		logger.Error("Index parse failed: %v", err)
		return nil
	}

	logger.Debug("Discovered %d runbook links", len(runbooks))
	return runbooks
}

// ExtractContent fetches one runbook page and returns a populated
// record. Failures degrade to nil.
func (s *Scraper) ExtractContent(ctx context.Context, pageURL string) *domain.Runbook {
	markup, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		logger.Error("Content fetch failed: %v", err)
		return nil
	}

	rb, err := parseContent(markup, pageURL)
	if err != nil {
		logger.Error("Content parse failed for %s: %v", pageURL, err)
		return nil
	}

	logger.Debug("Extracted %d characters from %s", len(rb.Content), pageURL)
	return rb
}
