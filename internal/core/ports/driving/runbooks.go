package driving

import (
	"context"

	"github.com/opskit/runbooks/internal/core/domain"
)

// RunbookService exposes the runbook corpus to callers.
//
// ListTopics, Search, and Fetch return caller-facing text in the exact
// shape the MCP tools emit; Topics and Matches return the raw records
// for callers that render their own view (JSON output, the TUI). Every
// method populates the cache from the index on first use.
type RunbookService interface {
	// Topics returns every cached runbook summary in insertion order,
	// discovering the index first if the cache is empty.
	Topics(ctx context.Context) ([]domain.Runbook, error)

	// ListTopics returns a formatted bullet list of all topics,
	// prefixed with the total count.
	ListTopics(ctx context.Context) (string, error)

	// Matches returns the runbooks whose title or slug contains the
	// query, case-insensitively, in insertion order. An empty query
	// matches every topic.
	Matches(ctx context.Context, query string) ([]domain.Runbook, error)

	// Search returns the Matches result as a formatted bullet list.
	Search(ctx context.Context, query string) (string, error)

	// Fetch returns the full document for a slug, fetching page content
	// on first access. A slug unknown even after re-discovery returns
	// domain.ErrNotFound; an unfetchable page returns
	// domain.ErrFetchFailed; an empty slug returns domain.ErrInvalidInput.
	Fetch(ctx context.Context, slug string) (string, error)
}
