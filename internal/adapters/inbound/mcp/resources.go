package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
)

const (
	theoriesURI = "humorlab://theories"
	weightsURI  = "humorlab://weights"
)

// registerResources registers all humorlab MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.AnalyzeService) {
	// 1. humorlab://theories - theory catalog
	s.AddResource(
		mcplib.NewResource(
			theoriesURI,
			"Humor Theories",
			mcplib.WithResourceDescription("The nine humor theories in canonical order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTheoriesResource(svc),
	)

	// 2. humorlab://weights - goal weight table
	s.AddResource(
		mcplib.NewResource(
			weightsURI,
			"Goal Weights",
			mcplib.WithResourceDescription("Theory weights used for the reach, monetization and viral estimates"),
			mcplib.WithMIMEType("application/json"),
		),
		handleWeightsResource(),
	)

	// 3. humorlab://theories/{id} - a single theory (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			theoriesURI+"/{id}",
			"Humor Theory",
			mcplib.WithTemplateDescription("Display name and description of one humor theory"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleTheoryResource(svc),
	)
}

func handleTheoriesResource(svc *application.AnalyzeService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(theoriesURI, svc.ListTheories())
	}
}

func handleWeightsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(weightsURI, domain.GoalWeights)
	}
}

func handleTheoryResource(svc *application.AnalyzeService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := domain.TheoryID(strings.TrimPrefix(request.Params.URI, theoriesURI+"/"))
		if !id.Valid() {
			return nil, fmt.Errorf("unknown theory %q", id)
		}
		for _, info := range svc.ListTheories() {
			if info.ID == id {
				return jsonContents(request.Params.URI, info)
			}
		}
		return nil, fmt.Errorf("unknown theory %q", id)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
