// Package content provides the runbook content view for the TUI.
package content

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opskit/runbooks/internal/adapters/driving/tui/keymap"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/messages"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/styles"
	"github.com/opskit/runbooks/internal/core/domain"
	"github.com/opskit/runbooks/internal/core/ports/driving"
)

// View is the runbook content view.
type View struct {
	styles         *styles.Styles
	runbookService driving.RunbookService
	keys           *keymap.KeyMap

	topic        *domain.Runbook
	content      string
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new content view.
func NewView(s *styles.Styles, runbookService driving.RunbookService) *View {
	return &View{
		styles:         s,
		runbookService: runbookService,
		keys:           keymap.DefaultKeyMap(),
	}
}

// SetTopic sets the topic and loads its runbook content.
func (v *View) SetTopic(topic domain.Runbook) tea.Cmd {
	v.topic = &topic
	v.content = ""
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	return v.loadContent()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadContent returns a command that loads the runbook content.
func (v *View) loadContent() tea.Cmd {
	return func() tea.Msg {
		if v.topic == nil || v.runbookService == nil {
			return messages.ContentLoaded{Err: fmt.Errorf("runbook service not available")}
		}

		v.loading = true
		content, err := v.runbookService.Fetch(context.Background(), v.topic.Slug)
		return messages.ContentLoaded{
			Slug:    v.topic.Slug,
			Content: content,
			Err:     err,
		}
	}
}

// Update handles messages for the content view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.wrapContent()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ContentLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.content = msg.Content
			v.wrapContent()
			v.err = nil
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(keyStr, v.keys.Down):
		maxOffset := v.maxScrollOffset()
		if v.scrollOffset < maxOffset {
			v.scrollOffset++
		}
	case keymap.Matches(keyStr, v.keys.PageUp):
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case keymap.Matches(keyStr, v.keys.PageDown):
		maxOffset := v.maxScrollOffset()
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > maxOffset {
			v.scrollOffset = maxOffset
		}
	case keymap.Matches(keyStr, v.keys.Top):
		v.scrollOffset = 0
	case keymap.Matches(keyStr, v.keys.Bottom):
		v.scrollOffset = v.maxScrollOffset()
	case keymap.Matches(keyStr, v.keys.Reload):
		v.loading = true
		v.err = nil
		return v, v.loadContent()
	case keymap.Matches(keyStr, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewTopics}
		}
	}

	return v, nil
}

// wrapContent wraps the content to fit the view width.
func (v *View) wrapContent() {
	if v.content == "" {
		v.lines = nil
		return
	}

	// Calculate available width (accounting for padding)
	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	// Split into lines and wrap long lines
	rawLines := strings.Split(v.content, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			v.lines = append(v.lines, line)
		} else {
			// Wrap long lines
			for len(line) > contentWidth {
				v.lines = append(v.lines, line[:contentWidth])
				line = line[contentWidth:]
			}
			if line != "" {
				v.lines = append(v.lines, line)
			}
		}
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the content view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := "Runbook"
	if v.topic != nil {
		topicTitle := v.topic.Title
		if topicTitle == "" {
			topicTitle = v.topic.Slug
		}
		title = topicTitle
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	// Separator
	sepWidth := min(v.width-4, 60)
	if sepWidth < 1 {
		sepWidth = 1
	}
	b.WriteString(strings.Repeat("─", sepWidth))
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading runbook..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty content
	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(No content)"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Content
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visibleLines; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	// Scroll position indicator
	if len(v.lines) > visibleLines {
		b.WriteString("\n")
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage,
			v.scrollOffset+1,
			min(v.scrollOffset+visibleLines, len(v.lines)),
			len(v.lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Topic returns the current topic.
func (v *View) Topic() *domain.Runbook {
	return v.topic
}

// Content returns the runbook content.
func (v *View) Content() string {
	return v.content
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
