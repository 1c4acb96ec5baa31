// Package tui provides an interactive terminal user interface for
// browsing Kubernetes runbooks. It implements a driving adapter
// following hexagonal architecture principles.
package tui

import (
	"github.com/opskit/runbooks/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Runbooks serves topic listings, filtering, and runbook content.
	Runbooks driving.RunbookService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(runbooks driving.RunbookService) *Ports {
	return &Ports{
		Runbooks: runbooks,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Runbooks == nil {
		return ErrMissingRunbookService
	}
	return nil
}
