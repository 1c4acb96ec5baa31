package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opskit/runbooks/internal/core/domain"
)

// registerPrompts registers all prompt handlers with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "troubleshoot-k8s",
		Description: "Get troubleshooting guidance for Kubernetes issues",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "symptoms",
				Description: "Describe the symptoms or error messages you're seeing",
				Required:    true,
			},
			{
				Name:        "context",
				Description: "Additional context about your Kubernetes setup",
				Required:    false,
			},
		},
	}, s.handleTroubleshootPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "runbook-summary",
		Description: "Summarize key points from Kubernetes runbooks",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topics",
				Description: "Comma-separated list of topics to summarize",
				Required:    false,
			},
		},
	}, s.handleSummaryPrompt)
}

// handleTroubleshootPrompt builds a troubleshooting prompt from the
// reported symptoms and optional cluster context.
func (s *Server) handleTroubleshootPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	symptoms := req.Params.Arguments["symptoms"]
	clusterContext := req.Params.Arguments["context"]

	if symptoms == "" {
		return nil, fmt.Errorf("symptoms are required for troubleshooting: %w", domain.ErrInvalidInput)
	}

	contextText := ""
	if clusterContext != "" {
		contextText = "\nAdditional context: " + clusterContext
	}

	text := fmt.Sprintf(
		"I'm experiencing the following Kubernetes issue:\n\nSymptoms: %s%s\n\n"+
			"Please help me troubleshoot this issue using the available Kubernetes runbooks. "+
			"Provide step-by-step guidance and relevant commands.",
		symptoms, contextText,
	)

	return &mcp.GetPromptResult{
		Description: "Kubernetes troubleshooting guidance",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}, nil
}

// handleSummaryPrompt builds a prompt asking for a digest of the
// runbook corpus, optionally narrowed to specific topics.
func (s *Server) handleSummaryPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	topics := req.Params.Arguments["topics"]

	topicsText := ""
	if topics != "" {
		topicsText = " for topics: " + topics
	}

	text := fmt.Sprintf(
		"Please provide a summary of the key troubleshooting steps and solutions "+
			"from the Kubernetes runbooks%s. Focus on the most common issues and their solutions.",
		topicsText,
	)

	return &mcp.GetPromptResult{
		Description: "Summarize Kubernetes runbooks",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}, nil
}
