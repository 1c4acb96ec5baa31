// Package topics provides the runbook topic list view for the TUI.
package topics

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opskit/runbooks/internal/adapters/driving/tui/components/input"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/keymap"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/messages"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/styles"
	"github.com/opskit/runbooks/internal/core/domain"
	"github.com/opskit/runbooks/internal/core/ports/driving"
)

// View is the topic list view.
type View struct {
	styles         *styles.Styles
	runbookService driving.RunbookService
	keys           *keymap.KeyMap
	filter         *input.FilterInput

	topics       []domain.Runbook
	visible      []domain.Runbook
	selected     int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	scrollOffset int
}

// NewView creates a new topics view.
func NewView(s *styles.Styles, runbookService driving.RunbookService) *View {
	return &View{
		styles:         s,
		runbookService: runbookService,
		keys:           keymap.DefaultKeyMap(),
		filter:         input.NewFilterInput(s),
		topics:         []domain.Runbook{},
		visible:        []domain.Runbook{},
		loading:        true,
	}
}

// Init initialises the view and starts loading the topic index.
func (v *View) Init() tea.Cmd {
	return v.loadTopics()
}

// loadTopics returns a command that loads the topic index.
func (v *View) loadTopics() tea.Cmd {
	return func() tea.Msg {
		if v.runbookService == nil {
			return messages.TopicsLoaded{Err: fmt.Errorf("runbook service not available")}
		}

		v.loading = true
		topics, err := v.runbookService.Topics(context.Background())
		return messages.TopicsLoaded{Topics: topics, Err: err}
	}
}

// Update handles messages for the topics view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.filter.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.filter.Focused() {
			return v.handleFilterKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.TopicsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.topics = msg.Topics
			v.err = nil
		}
		v.applyFilter()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keys.Down):
		if v.selected < len(v.visible)-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(keyStr, v.keys.Select):
		if v.selected < len(v.visible) {
			topic := v.visible[v.selected]
			return v, func() tea.Msg {
				return messages.TopicSelected{Topic: topic}
			}
		}
	case keymap.Matches(keyStr, v.keys.Filter):
		return v, v.filter.Focus()
	case keymap.Matches(keyStr, v.keys.Reload):
		v.loading = true
		v.err = nil
		return v, v.loadTopics()
	case keymap.Matches(keyStr, v.keys.Back):
		if v.filter.Value() != "" {
			v.filter.Reset()
			v.applyFilter()
		}
	case keymap.Matches(keyStr, v.keys.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// handleFilterKeyMsg handles key presses while the filter input is focused.
func (v *View) handleFilterKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.filter.Blur()
		return v, nil
	case "esc":
		v.filter.Reset()
		v.filter.Blur()
		v.applyFilter()
		return v, nil
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.applyFilter()
	return v, cmd
}

// applyFilter recomputes the visible topics from the filter text.
func (v *View) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(v.filter.Value()))
	if query == "" {
		v.visible = v.topics
	} else {
		filtered := make([]domain.Runbook, 0, len(v.topics))
		for _, topic := range v.topics {
			if strings.Contains(strings.ToLower(topic.Title), query) ||
				strings.Contains(strings.ToLower(topic.Slug), query) {
				filtered = append(filtered, topic)
			}
		}
		v.visible = filtered
	}

	if v.selected >= len(v.visible) {
		v.selected = len(v.visible) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	v.scrollOffset = 0
	v.adjustScroll()
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, filter row, separator, help, and padding
	reserved := 9
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the topics view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := fmt.Sprintf("Kubernetes Runbooks (%d)", len(v.topics))
	if strings.TrimSpace(v.filter.Value()) != "" {
		title = fmt.Sprintf("Kubernetes Runbooks (%d/%d)", len(v.visible), len(v.topics))
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	// Filter row
	b.WriteString(v.filter.View())
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading topics..."))
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

	// Empty states
	if len(v.topics) == 0 {
		b.WriteString(v.styles.Muted.Render("No runbook topics found."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}
	if len(v.visible) == 0 {
		b.WriteString(v.styles.Muted.Render("No topics match the filter."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Topic list
	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.visible) && i < v.scrollOffset+visibleItems; i++ {
		line := v.renderTopic(i, &v.visible[i])
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(v.visible) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.visible)),
			len(v.visible))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderTopic renders a single topic line.
func (v *View) renderTopic(index int, topic *domain.Runbook) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := topic.Title
	if title == "" {
		title = topic.Slug
	}

	// Truncate title if needed
	maxTitleLen := v.width/2 - 4
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, topic.Slug))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxTitleLen, title)) +
		v.styles.Muted.Render(topic.Slug)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	if v.filter.Focused() {
		return v.styles.Help.Render("[enter] apply  [esc] clear")
	}
	return v.styles.Help.Render("[↑/↓] navigate  [enter] open  [/] filter  [r] reload  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.filter.SetWidth(width)
}

// Topics returns the full topic index.
func (v *View) Topics() []domain.Runbook {
	return v.topics
}

// Visible returns the topics matching the current filter.
func (v *View) Visible() []domain.Runbook {
	return v.visible
}

// SelectedIndex returns the currently selected topic index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedTopic returns the currently selected topic.
func (v *View) SelectedTopic() *domain.Runbook {
	if v.selected < len(v.visible) {
		return &v.visible[v.selected]
	}
	return nil
}

// IsFiltering returns true if the filter input is focused.
func (v *View) IsFiltering() bool {
	return v.filter.Focused()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
