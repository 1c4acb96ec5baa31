package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FetchRunbookInput is the input schema for the fetch-runbook tool.
type FetchRunbookInput struct {
	Topic string `json:"topic" jsonschema:"the runbook topic/slug to fetch"`
}

// SearchRunbooksInput is the input schema for the search-runbooks tool.
type SearchRunbooksInput struct {
	Query string `json:"query" jsonschema:"search query for finding relevant runbooks"`
}

// ListTopicsInput is the input schema for the list-topics tool.
// The tool takes no arguments.
type ListTopicsInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch-runbook",
		Description: "Fetch a specific Kubernetes runbook by topic",
	}, s.handleFetchRunbook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search-runbooks",
		Description: "Search through Kubernetes runbooks by keyword",
	}, s.handleSearchRunbooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list-topics",
		Description: "List all available Kubernetes runbook topics",
	}, s.handleListTopics)
}

// handleFetchRunbook handles the fetch-runbook tool invocation.
//
// This tool promises text output: every downstream failure (unknown
// slug, unfetchable page, invalid input) is rendered as an error
// message rather than propagated, unlike the other handlers.
func (s *Server) handleFetchRunbook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchRunbookInput,
) (*mcp.CallToolResult, any, error) {
	doc, err := s.ports.Runbooks.Fetch(ctx, input.Topic)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Error fetching runbook '%s': %v", input.Topic, err),
			}},
			IsError: true,
		}, nil, nil
	}

	return textResult(doc), nil, nil
}

// handleSearchRunbooks handles the search-runbooks tool invocation.
func (s *Server) handleSearchRunbooks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchRunbooksInput,
) (*mcp.CallToolResult, any, error) {
	result, err := s.ports.Runbooks.Search(ctx, input.Query)
	if err != nil {
		return nil, nil, err
	}

	return textResult(result), nil, nil
}

// handleListTopics handles the list-topics tool invocation.
func (s *Server) handleListTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTopicsInput,
) (*mcp.CallToolResult, any, error) {
	result, err := s.ports.Runbooks.ListTopics(ctx)
	if err != nil {
		return nil, nil, err
	}

	return textResult(result), nil, nil
}

// textResult wraps plain text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
