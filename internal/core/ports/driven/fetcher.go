package driven

import "context"

// Fetcher retrieves raw markup for a URL.
// Implementations own a single long-lived HTTP client with a bounded
// request timeout and a stable User-Agent header.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Transport failures and non-2xx statuses return an error carrying
	// the URL and the underlying cause.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases the underlying transport resources.
	Close() error
}
