package driven

import (
	"context"

	"github.com/opskit/runbooks/internal/core/domain"
)

// Extractor turns site markup into runbook records.
//
// Both methods degrade rather than fail: fetch and parse errors are
// logged inside the implementation and never propagate. Callers decide
// what an empty or nil result means for them.
type Extractor interface {
	// DiscoverIndex fetches the index page and returns summary records
	// (slug, title, URL) for every qualifying runbook link, in document
	// order. Duplicate slugs are preserved; the cache collapses them on
	// upsert. On any failure the slice is empty.
	DiscoverIndex(ctx context.Context) []domain.Runbook

	// ExtractContent fetches one runbook page and returns a record with
	// title, cleaned content, and derived description. Returns nil if
	// the page cannot be fetched or parsed.
	ExtractContent(ctx context.Context, pageURL string) *domain.Runbook
}
