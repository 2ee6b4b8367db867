package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	daydayupmcp "github.com/gorewood/daydayup/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run daydayup as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "daydayup": {
        "command": "daydayup",
        "args": ["serve", "--tz", "Asia/Shanghai"]
      }
    }
  }

The --locale, --tz and --iso-week flags set defaults that each tool call
may override.

Available tools: query, classify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, dir, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			server := daydayupmcp.NewServer(buildVersion(), daydayupmcp.Env{
				Settings:  settings,
				ConfigDir: dir,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
