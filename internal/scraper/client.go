package scraper

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/opskit/runbooks/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the scraper to the runbooks site.
	DefaultUserAgent = "Mozilla/5.0 (compatible; runbooks-mcp/1.0)"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// Client retrieves markup over HTTP. One Client owns one http.Client,
// created at construction and reused for every request.
type Client struct {
	http      *http.Client
	userAgent string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the request timeout.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new HTTP client for the runbooks site.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a GET request and returns the response body.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return string(body), nil
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
