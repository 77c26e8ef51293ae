package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/humorlab/humorlab/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the humorlab MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start humorlab MCP server (stdio)",
		Long:  "Start the humorlab MCP server using stdio transport. This lets AI assistants analyze jokes and read the theory catalog and goal weights.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewHumorlabMCPServer(opts.service(), version)
			return server.ServeStdio(s)
		},
	}
}
