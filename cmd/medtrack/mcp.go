// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/medtrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your health data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "medtrack": {
        "command": "medtrack",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  submit_report         Submit report text for analysis
  list_reports          List submitted reports
  get_health_score      Get the current health score
  set_medications       Replace the medication list, check interactions
  check_interactions    Check drugs without changing the list
  recommend_facilities  Current recommendations and the catalog
  book_appointment      Book a follow-up appointment
  chat                  Talk to the AI health assistant

AVAILABLE RESOURCES:

  medtrack://summary          Score, latest readings, and counts
  medtrack://reports/recent   Last 10 reports
  medtrack://readings         Per-kind reading histories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(session)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
