package scraper

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opskit/runbooks/internal/logger"
)

// silenceLogger discards log output for tests that exercise failure
// paths, which always log at the error level.
func silenceLogger(t *testing.T) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
	})
}

func TestNew_DefaultBaseURL(t *testing.T) {
	s, err := New(&mockFetcher{}, "")

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, s.BaseURL())
}

func TestNew_CustomBaseURL(t *testing.T) {
	s, err := New(&mockFetcher{}, "https://example.com/posts/kubernetes/")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/posts/kubernetes/", s.BaseURL())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	s, err := New(&mockFetcher{}, "://missing-scheme")

	require.Error(t, err)
	assert.Nil(t, s)
}

func TestScraper_DiscoverIndex_Success(t *testing.T) {
	fetcher := &mockFetcher{
		pages: map[string]string{
			DefaultBaseURL: `<html><body>
			<a href="/runbooks/posts/kubernetes/oom-killed/">OOMKilled</a>
			<a href="/runbooks/posts/kubernetes/dns-failures/">DNS Failures</a>
			</body></html>`,
		},
	}
	s, err := New(fetcher, "")
	require.NoError(t, err)

	runbooks := s.DiscoverIndex(context.Background())

	require.Len(t, runbooks, 2)
	assert.Equal(t, "oom-killed", runbooks[0].Slug)
	assert.Equal(t, "dns-failures", runbooks[1].Slug)
	assert.Equal(t, []string{DefaultBaseURL}, fetcher.calls)
}

func TestScraper_DiscoverIndex_FetchFailure(t *testing.T) {
	silenceLogger(t)
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	s, err := New(fetcher, "")
	require.NoError(t, err)

	runbooks := s.DiscoverIndex(context.Background())

	assert.Empty(t, runbooks)
}

func TestScraper_ExtractContent_Success(t *testing.T) {
	pageURL := "https://example.com/posts/kubernetes/oom-killed/"
	fetcher := &mockFetcher{
		pages: map[string]string{
			pageURL: `<html><body>
			<h1>Pod OOMKilled</h1>
			<main><p>Check memory limits.</p></main>
			</body></html>`,
		},
	}
	s, err := New(fetcher, "")
	require.NoError(t, err)

	rb := s.ExtractContent(context.Background(), pageURL)

	require.NotNil(t, rb)
	assert.Equal(t, "Pod OOMKilled", rb.Title)
	assert.Equal(t, "Check memory limits.", rb.Content)
	assert.Equal(t, "Check memory limits.", rb.Description)
	assert.Equal(t, pageURL, rb.URL)
	assert.Equal(t, "", rb.Slug)
}

func TestScraper_ExtractContent_FetchFailure(t *testing.T) {
	silenceLogger(t)
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	s, err := New(fetcher, "")
	require.NoError(t, err)

	rb := s.ExtractContent(context.Background(), "https://example.com/posts/kubernetes/oom-killed/")

	assert.Nil(t, rb)
}
