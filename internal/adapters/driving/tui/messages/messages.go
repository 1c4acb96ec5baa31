// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/opskit/runbooks/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTopics is the runbook topic list view.
	ViewTopics ViewType = iota
	// ViewContent shows a single runbook's content.
	ViewContent
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTopics:
		return "topics"
	case ViewContent:
		return "content"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// TopicsLoaded carries the discovered runbook topics back to the model.
type TopicsLoaded struct {
	Topics []domain.Runbook
	Err    error
}

// TopicSelected signals a topic was chosen from the list.
type TopicSelected struct {
	Topic domain.Runbook
}

// ContentLoaded carries a single runbook's rendered document.
type ContentLoaded struct {
	Slug    string
	Content string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
