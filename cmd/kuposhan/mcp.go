package main

import (
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	kuposhanlog "github.com/junkd0g/kuposhan/internal/log"
	"github.com/junkd0g/kuposhan/internal/tools"
)

func newMCPServer() *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"kuposhan",
		Version,
	)
	tools.Register(s)
	return s
}

func newMCPCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Start an MCP server on stdin/stdout exposing the dashboard tools:
  - render_dashboard: write the dashboard HTML
  - age_breakdown:    age-group figures and insight for one indicator
  - factor_map:       graph of the factors contributing to stunting
  - dataset_summary:  every figure as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol.
			kuposhanlog.SetupWriter(cmd.ErrOrStderr(), g.verbose, g.quiet)

			if err := mcpserver.ServeStdio(newMCPServer()); err != nil {
				return exitError(ExitRenderFailure, "kuposhan: server error: %v", err)
			}
			return nil
		},
	}
}
