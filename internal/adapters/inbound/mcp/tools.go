package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
)

// registerTools registers all humorlab MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.AnalyzeService) {
	// 1. humorlab_analyze
	s.AddTool(
		mcplib.NewTool("humorlab_analyze",
			mcplib.WithDescription("Scores a joke against nine humor theories and returns the full analysis as JSON"),
			mcplib.WithString("joke_text",
				mcplib.Required(),
				mcplib.Description("The joke to analyze (5 to 1000 characters)"),
			),
			mcplib.WithString("persona",
				mcplib.Description("Optional speaker persona, e.g. waldus"),
			),
			mcplib.WithString("context_json",
				mcplib.Description("Optional analysis context as a JSON object"),
			),
		),
		handleAnalyze(svc),
	)

	// 2. humorlab_extract
	s.AddTool(
		mcplib.NewTool("humorlab_extract",
			mcplib.WithDescription("Extracts raw humor features of a joke (structure, keywords, atoms, timing, narrative, absurdity) without scoring"),
			mcplib.WithString("joke_text",
				mcplib.Required(),
				mcplib.Description("The joke to inspect (5 to 1000 characters)"),
			),
		),
		handleExtract(svc),
	)

	// 3. humorlab_list_theories
	s.AddTool(
		mcplib.NewTool("humorlab_list_theories",
			mcplib.WithDescription("Returns the nine humor theories with their display names and descriptions"),
		),
		handleListTheories(svc),
	)
}

func handleAnalyze(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		joke, err := request.RequireString("joke_text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req := domain.AnalyzeRequest{
			JokeText: joke,
			Persona:  request.GetString("persona", ""),
		}
		if raw := request.GetString("context_json", ""); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Context); err != nil {
				return errorResult(fmt.Sprintf("invalid context_json: %v", err)), nil
			}
		}

		result, err := svc.Analyze(ctx, req)
		if err != nil {
			return errorResult(domain.PublicMessage(err, svc.Debug())), nil
		}
		return jsonResult(result)
	}
}

func handleExtract(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		joke, err := request.RequireString("joke_text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		features, err := svc.Extract(ctx, domain.AnalyzeRequest{JokeText: joke})
		if err != nil {
			return errorResult(domain.PublicMessage(err, svc.Debug())), nil
		}
		return jsonResult(features)
	}
}

func handleListTheories(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.ListTheories())
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
