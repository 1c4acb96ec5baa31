package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opskit/runbooks/internal/core/domain"
)

// runbookURIPrefix is the custom URI scheme for runbook resources.
// Runbooks are addressed as runbook://kubernetes/{slug}.
const runbookURIPrefix = "runbook://kubernetes/"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for runbook content, one resource per topic slug.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: runbookURIPrefix + "{slug}",
		Name:        "kubernetes-runbook",
		Description: "Kubernetes troubleshooting guide for a specific topic",
		MIMEType:    "text/plain",
	}, s.handleRunbookResource)
}

// handleRunbookResource returns the rendered content of a single runbook.
func (s *Server) handleRunbookResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	slug := extractSlug(req.Params.URI)
	if slug == "" {
		return nil, fmt.Errorf("invalid runbook URI %q: %w", req.Params.URI, domain.ErrInvalidInput)
	}

	doc, err := s.ports.Runbooks.Fetch(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("reading runbook %q: %w", slug, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc,
		}},
	}, nil
}

// extractSlug extracts the topic slug from a URI like runbook://kubernetes/{slug}.
func extractSlug(uri string) string {
	if !strings.HasPrefix(uri, runbookURIPrefix) {
		return ""
	}

	return strings.Trim(strings.TrimPrefix(uri, runbookURIPrefix), "/")
}
