package driven

import (
	"context"

	"github.com/opskit/runbooks/internal/core/domain"
)

// RunbookStore caches runbook records for the lifetime of the process.
// Implementations serialise their own state; callers apply no external
// locking.
type RunbookStore interface {
	// Get retrieves a runbook by slug.
	// Returns domain.ErrNotFound if the slug is not cached.
	Get(ctx context.Context, slug string) (*domain.Runbook, error)

	// Upsert inserts or overwrites a runbook keyed by slug.
	// An overwritten slug keeps its original iteration position;
	// a new slug is appended.
	Upsert(ctx context.Context, rb *domain.Runbook) error

	// IsEmpty reports whether the store holds no records.
	IsEmpty(ctx context.Context) (bool, error)

	// All returns every cached runbook in insertion order.
	All(ctx context.Context) ([]domain.Runbook, error)
}
