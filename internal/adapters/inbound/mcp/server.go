package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/humorlab/humorlab/internal/application"
)

// NewHumorlabMCPServer creates a new MCP server with all humorlab tools and
// resources registered on top of svc.
func NewHumorlabMCPServer(svc *application.AnalyzeService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"humorlab",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
