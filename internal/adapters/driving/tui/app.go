package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opskit/runbooks/internal/adapters/driving/tui/messages"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/styles"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/views/content"
	"github.com/opskit/runbooks/internal/adapters/driving/tui/views/topics"
	"github.com/opskit/runbooks/internal/core/domain"
)

// App is the root bubbletea model. It owns the topic list and content
// views and routes messages between whichever is active.
type App struct {
	ports *Ports

	// ctx carries cancellation from the CLI down to service calls.
	ctx context.Context

	styles *styles.Styles

	topicsView  *topics.View
	contentView *content.View

	// selectedTopic is the topic open in the content view.
	selectedTopic *domain.Runbook

	currentView messages.ViewType

	err error

	width  int
	height int

	// ready flips once the first WindowSizeMsg arrives.
	ready bool
}

var _ tea.Model = (*App)(nil)

// NewApp builds the TUI around the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	topicsView := topics.NewView(s, ports.Runbooks)
	contentView := content.NewView(s, ports.Runbooks)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		topicsView:  topicsView,
		contentView: contentView,
		currentView: messages.ViewTopics, // Start with the topic list
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the program: alternate screen, window title, and the
// first topic index load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("runbooks - Kubernetes Troubleshooting"),
		a.topicsView.Init(),
	)
}

// Update routes messages to the app state and the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Both views size themselves off the full terminal
		a.topicsView.SetDimensions(msg.Width, msg.Height)
		a.contentView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// ctrl+c quits from anywhere
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateActiveView(msg)

	case messages.TopicsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.topicsView, cmd = a.topicsView.Update(msg)
		return a, cmd

	case messages.TopicSelected:
		a.selectedTopic = &msg.Topic
		a.currentView = messages.ViewContent
		return a, a.contentView.SetTopic(msg.Topic)

	case messages.ContentLoaded:
		a.contentView, cmd = a.contentView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.updateActiveView(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateActiveView(msg)
}

// updateActiveView forwards msg to whichever view is showing.
func (a *App) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewTopics:
		a.topicsView, cmd = a.topicsView.Update(msg)
	case messages.ViewContent:
		a.contentView, cmd = a.contentView.Update(msg)
	}
	return cmd
}

// View renders the active view. Unknown view types fall back to the
// topic list.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewContent:
		return a.contentView.View()
	default:
		return a.topicsView.View()
	}
}

// Run starts the program in the alternate screen and blocks until it
// exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedTopic returns the topic being viewed, if any.
func (a *App) SelectedTopic() *domain.Runbook {
	return a.selectedTopic
}

// Err returns the last error seen by the app.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the first window size has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.topicsView.SetDimensions(width, height)
	a.contentView.SetDimensions(width, height)
}
