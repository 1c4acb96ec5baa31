// Package scraper implements the site connector for the Kubernetes
// runbooks collection published by Container Solutions.
//
// It comprises the following components:
//
//   - Client: fetches raw markup over HTTP with a bounded timeout and a
//     stable User-Agent header
//   - Scraper: turns markup into runbook records, implementing both
//     index discovery and per-page content extraction
//
// # Index Discovery
//
// The index page lists every runbook as an anchor whose href contains
// /posts/kubernetes/. Discovery keeps qualifying anchors in document
// order, derives the slug from the final href path segment, and resolves
// hrefs against the index base URL. Pagination links (titles beginning
// with Prev or Next) and the index self-link are discarded. Duplicate
// slugs are preserved; the cache collapses them on upsert.
//
// # Content Extraction
//
// A runbook page is reduced to plain text: title from the first h1,
// content from the first of main, article, or div.content, with nav,
// header, and footer elements removed. Text is joined with newlines at
// block boundaries, whitespace runs are collapsed, and three or more
// consecutive newlines become a single blank line. The description is
// the first 200 characters of the content.
//
// # Error Handling
//
// Transport failures carry the URL and cause as a *FetchError. Discovery
// and extraction never propagate errors: failures are logged and degrade
// to an empty slice or nil record, leaving the caller's cache untouched.
//
// # Limitations
//
//   - No retries or rate limiting; every call is a single request
//   - No JavaScript rendering; the site is static HTML
package scraper
