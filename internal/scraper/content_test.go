package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageURL = "https://containersolutions.github.io/runbooks/posts/kubernetes/oom-killed/"

func TestParseContent_TitleFromFirstH1(t *testing.T) {
	markup := `<html><body>
	<h1>  Pod OOMKilled  </h1>
	<main><h1>Secondary heading</h1><p>Body.</p></main>
	</body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Pod OOMKilled", rb.Title)
}

func TestParseContent_NoH1(t *testing.T) {
	markup := `<html><body><main><p>No heading here.</p></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "", rb.Title)
}

func TestParseContent_ContainerCascade(t *testing.T) {
	t.Run("main preferred over article", func(t *testing.T) {
		markup := `<html><body><main><p>In main.</p></main><article><p>In article.</p></article></body></html>`

		rb, err := parseContent(markup, testPageURL)

		require.NoError(t, err)
		assert.Equal(t, "In main.", rb.Content)
	})

	t.Run("article when no main", func(t *testing.T) {
		markup := `<html><body><article><p>In article.</p></article></body></html>`

		rb, err := parseContent(markup, testPageURL)

		require.NoError(t, err)
		assert.Equal(t, "In article.", rb.Content)
	})

	t.Run("div.content when no main or article", func(t *testing.T) {
		markup := `<html><body><div class="content"><p>In div.</p></div></body></html>`

		rb, err := parseContent(markup, testPageURL)

		require.NoError(t, err)
		assert.Equal(t, "In div.", rb.Content)
	})

	t.Run("no container yields empty content", func(t *testing.T) {
		markup := `<html><body><p>Loose text.</p></body></html>`

		rb, err := parseContent(markup, testPageURL)

		require.NoError(t, err)
		assert.Equal(t, "", rb.Content)
		assert.Equal(t, "", rb.Description)
	})
}

func TestParseContent_RemovesNavHeaderFooter(t *testing.T) {
	markup := `<html><body><main>
	<nav>Site navigation</nav>
	<header>Page header</header>
	<p>Real content here.</p>
	<footer>Copyright footer</footer>
	</main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Real content here.", rb.Content)
	assert.NotContains(t, rb.Content, "Site navigation")
	assert.NotContains(t, rb.Content, "Page header")
	assert.NotContains(t, rb.Content, "Copyright footer")
}

func TestParseContent_BlockBoundaries(t *testing.T) {
	markup := `<html><body><main><h2>Steps</h2><ul><li>First step</li><li>Second step</li></ul></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Steps\n\nFirst step\n\nSecond step", rb.Content)
}

func TestParseContent_InlineElementsStayOnOneLine(t *testing.T) {
	markup := `<html><body><main><p>Use <code>kubectl get pods</code> to list.</p></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Use kubectl get pods to list.", rb.Content)
}

func TestParseContent_BrBecomesNewline(t *testing.T) {
	markup := `<html><body><main><p>line one<br>line two</p></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", rb.Content)
}

func TestParseContent_SkipsScriptAndStyle(t *testing.T) {
	markup := `<html><body><main>
	<p>Visible.</p>
	<script>var tracker = 1;</script>
	<style>.hidden { display: none; }</style>
	</main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Visible.", rb.Content)
	assert.NotContains(t, rb.Content, "tracker")
	assert.NotContains(t, rb.Content, "display")
}

func TestParseContent_CollapsesWhitespace(t *testing.T) {
	markup := "<html><body><main><p>spaced\t\tout    words</p><p></p><p></p><p>after gap</p></main></body></html>"

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "spaced out words\n\nafter gap", rb.Content)
}

func TestParseContent_DescriptionTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", 250)
	markup := "<html><body><main><p>" + long + "</p></main></body></html>"

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Len(t, rb.Content, 250)
	assert.Equal(t, strings.Repeat("a", 200)+"...", rb.Description)
}

func TestParseContent_DescriptionShortContentVerbatim(t *testing.T) {
	markup := `<html><body><main><p>Check memory limits.</p></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Check memory limits.", rb.Description)
	assert.NotContains(t, rb.Description, "...")
}

func TestParseContent_CarriesPageURL(t *testing.T) {
	markup := `<html><body><main><p>Body.</p></main></body></html>`

	rb, err := parseContent(markup, testPageURL)

	require.NoError(t, err)
	assert.Equal(t, testPageURL, rb.URL)
	assert.Equal(t, "", rb.Slug)
}

func TestParseContent_EmptyMarkup(t *testing.T) {
	rb, err := parseContent("", testPageURL)

	require.NoError(t, err)
	assert.Equal(t, "", rb.Title)
	assert.Equal(t, "", rb.Content)
	assert.Equal(t, "", rb.Description)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"short", "short text", "short text"},
		{"exactly at limit", strings.Repeat("x", 200), strings.Repeat("x", 200)},
		{"one over limit", strings.Repeat("x", 201), strings.Repeat("x", 200) + "..."},
		{"multibyte runes", strings.Repeat("é", 201), strings.Repeat("é", 200) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.content))
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"space runs", "a  b   c", "a b c"},
		{"tabs", "a\t\tb", "a b"},
		{"line trimming", "  padded line  ", "padded line"},
		{"newline runs", "one\n\n\n\ntwo", "one\n\ntwo"},
		{"outer whitespace", "\n\n  body  \n\n", "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.input))
		})
	}
}
