package mcp

import (
	"github.com/opskit/runbooks/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Runbooks serves runbook queries over the lazily populated cache.
	Runbooks driving.RunbookService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Runbooks == nil {
		return ErrMissingRunbookService
	}
	return nil
}
