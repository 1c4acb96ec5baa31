package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/opskit/runbooks/internal/core/domain"
)

// indexPathMarker identifies runbook links on the index page. The index
// self-link is exactly this path and is excluded.
const indexPathMarker = "/posts/kubernetes/"

// parseIndex extracts summary records from the index page markup.
// Links are kept in document order; duplicate slugs are preserved.
func parseIndex(markup string, base *url.URL) ([]domain.Runbook, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var runbooks []domain.Runbook
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, indexPathMarker) || href == indexPathMarker {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" || strings.HasPrefix(title, "Prev") || strings.HasPrefix(title, "Next") {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		runbooks = append(runbooks, domain.Runbook{
			Slug:  slugFromHref(href),
			Title: title,
			URL:   resolved,
		})
	})

	return runbooks, nil
}

// slugFromHref derives the slug from the final path segment of an href.
// Hrefs ending in a separator use the second-to-last segment.
func slugFromHref(href string) string {
	parts := strings.Split(href, "/")
	if strings.HasSuffix(href, "/") {
		return parts[len(parts)-2]
	}
	return parts[len(parts)-1]
}

// resolveURL makes an href absolute against the index base URL.
// Returns empty string for unparseable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
