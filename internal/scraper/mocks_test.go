package scraper

import (
	"context"
	"net/http"
)

// mockFetcher serves canned markup keyed by URL.
type mockFetcher struct {
	pages map[string]string
	err   error
	calls []string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (string, error) {
	m.calls = append(m.calls, url)
	if m.err != nil {
		return "", m.err
	}
	page, ok := m.pages[url]
	if !ok {
		return "", &FetchError{URL: url, StatusCode: http.StatusNotFound}
	}
	return page, nil
}

func (m *mockFetcher) Close() error {
	return nil
}
