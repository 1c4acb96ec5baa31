package scraper

import (
	"errors"
	"fmt"
)

// FetchError represents a failed page fetch. It carries the requested
// URL and either the HTTP status or the underlying transport error.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scraper: HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("scraper: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError checks if the error is a fetch failure.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
