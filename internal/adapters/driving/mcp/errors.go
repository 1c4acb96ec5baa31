// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the Kubernetes runbooks service. It exposes the runbook corpus to
// AI assistants as tools, resources, and troubleshooting prompts.
package mcp

import "errors"

// ErrMissingRunbookService is returned when the runbook service is not provided.
var ErrMissingRunbookService = errors.New("mcp: runbook service is required")
