package mcp

import (
	"context"

	"github.com/opskit/runbooks/internal/core/domain"
)

// mockRunbookService is a mock implementation of driving.RunbookService.
type mockRunbookService struct {
	topics       []domain.Runbook
	listResult   string
	searchResult string
	fetchResult  string
	err          error

	lastQuery string
	lastSlug  string
}

func (m *mockRunbookService) Topics(_ context.Context) ([]domain.Runbook, error) {
	return m.topics, m.err
}

func (m *mockRunbookService) ListTopics(_ context.Context) (string, error) {
	return m.listResult, m.err
}

func (m *mockRunbookService) Matches(_ context.Context, query string) ([]domain.Runbook, error) {
	m.lastQuery = query
	return m.topics, m.err
}

func (m *mockRunbookService) Search(_ context.Context, query string) (string, error) {
	m.lastQuery = query
	return m.searchResult, m.err
}

func (m *mockRunbookService) Fetch(_ context.Context, slug string) (string, error) {
	m.lastSlug = slug
	return m.fetchResult, m.err
}
