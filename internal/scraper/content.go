package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/opskit/runbooks/internal/core/domain"
)

// descriptionLimit caps the derived description length in runes.
const descriptionLimit = 200

// contentSelectors are tried in order; the first match wins.
var contentSelectors = []string{"main", "article", "div.content"}

var (
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// blockTags mark elements whose boundaries become line breaks when
// flattening markup to text.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// skipTags are dropped entirely when flattening markup to text.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"iframe": true,
}

// parseContent extracts a populated runbook record from page markup.
// The slug is left for the caller to fill; records merge into cached
// summaries keyed by slug.
func parseContent(markup, pageURL string) (*domain.Runbook, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	content := ""
	if container := findContainer(doc); container != nil {
		container.Find("nav, header, footer").Remove()
		content = cleanText(blockText(container))
	}

	return &domain.Runbook{
		Title:       title,
		URL:         pageURL,
		Content:     content,
		Description: describe(content),
	}, nil
}

// findContainer returns the first matching content container, or nil.
func findContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// blockText flattens a selection to text, inserting newlines at block
// element boundaries so paragraphs survive as separate lines.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(node, &b)
	}
	return b.String()
}

func writeNodeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
		if blockTags[n.Data] {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, b)
		}
		if blockTags[n.Data] {
			b.WriteString("\n")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, b)
		}
	}
}

// cleanText normalises whitespace: space runs collapse to one space,
// every line is trimmed, and runs of three or more newlines collapse to
// a single blank line.
func cleanText(s string) string {
	s = multiSpaces.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = multiNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// describe derives the short preview shown in listings: the first 200
// characters of content, with an ellipsis marker when truncated.
func describe(content string) string {
	runes := []rune(content)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + "..."
	}
	return content
}
