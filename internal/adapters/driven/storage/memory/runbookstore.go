package memory

import (
	"context"
	"sync"

	"github.com/opskit/runbooks/internal/core/domain"
	"github.com/opskit/runbooks/internal/core/ports/driven"
)

// Ensure RunbookStore implements the interface.
var _ driven.RunbookStore = (*RunbookStore)(nil)

// RunbookStore is an in-memory implementation of driven.RunbookStore.
// Records are keyed by slug; the order slice preserves first-insertion
// order so All iterates deterministically.
type RunbookStore struct {
	mu       sync.RWMutex
	runbooks map[string]domain.Runbook
	order    []string
}

// NewRunbookStore creates a new in-memory runbook store.
func NewRunbookStore() *RunbookStore {
	return &RunbookStore{
		runbooks: make(map[string]domain.Runbook),
	}
}

// Get retrieves a runbook by slug.
func (s *RunbookStore) Get(_ context.Context, slug string) (*domain.Runbook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rb, ok := s.runbooks[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rb, nil
}

// Upsert inserts or overwrites a runbook keyed by slug.
// A slug seen before keeps its position in the iteration order.
func (s *RunbookStore) Upsert(_ context.Context, rb *domain.Runbook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runbooks[rb.Slug]; !ok {
		s.order = append(s.order, rb.Slug)
	}
	s.runbooks[rb.Slug] = *rb
	return nil
}

// IsEmpty reports whether the store holds no records.
func (s *RunbookStore) IsEmpty(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runbooks) == 0, nil
}

// All returns every cached runbook in insertion order.
func (s *RunbookStore) All(_ context.Context) ([]domain.Runbook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Runbook, 0, len(s.order))
	for _, slug := range s.order {
		result = append(result, s.runbooks[slug])
	}
	return result, nil
}
