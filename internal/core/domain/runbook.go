package domain

// Runbook represents a single Kubernetes troubleshooting guide scraped
// from the runbooks site. Records start life as index summaries and gain
// content the first time the page itself is fetched.
type Runbook struct {
	// Slug is the URL-derived identifier and the cache key.
	Slug string

	// Title is the human-readable title. Discovery sets it from the
	// index link text; content extraction replaces it with the page's
	// first heading when one exists.
	Title string

	// URL is the absolute address of the runbook page.
	URL string

	// Content is the cleaned plain text of the page.
	// Empty until the page has been fetched.
	Content string

	// Description is a short preview derived from Content.
	// Empty until the page has been fetched.
	Description string
}

// Populated reports whether the runbook carries fetched page content.
// Summary-only records (index discovery output) are not populated.
func (r *Runbook) Populated() bool {
	return r.Content != ""
}
