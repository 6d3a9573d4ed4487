// ABOUTME: Root Cobra command for medtrack CLI.
// ABOUTME: Opens config, storage, and the session in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/medtrack/internal/ai"
	"github.com/harperreed/medtrack/internal/config"
	"github.com/harperreed/medtrack/internal/interact"
	"github.com/harperreed/medtrack/internal/state"
	"github.com/harperreed/medtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	repo    storage.Repository
	session *state.Session
)

var rootCmd = &cobra.Command{
	Use:   "medtrack",
	Short: "Personal health tracker with AI report analysis",
	Long: `Medtrack is a CLI tool for tracking personal health from medical reports.

WHAT IT DOES:

  Reports        Submit medical report text for AI analysis
  Metrics        Blood pressure, glucose, cholesterol, heart rate, BMI, and
                 weight are extracted from report text automatically
  Score          A 0-100 health score derived from your latest readings
  Medications    Track active medications and check drug interactions
  Facilities     Get facility recommendations and book follow-up appointments
  Assistant      Chat with the AI health assistant

QUICK START:

  $ medtrack upload report.txt           # Analyze a medical report
  $ medtrack status                      # Health score and latest readings
  $ medtrack reports                     # List submitted reports
  $ medtrack meds set Warfarin Aspirin   # Set medications, check interactions
  $ medtrack facilities                  # See recommended facilities
  $ medtrack book 1 --name "Asha" --phone "+91 98765 43210"
  $ medtrack chat "What does high LDL mean?"

AI SERVICE:

  Analysis and chat use a Mistral-style chat-completions API. Set
  MISTRAL_API_KEY in your environment. If the service is unreachable,
  reports still get recorded with a fallback analysis.

MCP INTEGRATION:

  Run 'medtrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "medtrack": { "command": "medtrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/medtrack/medtrack.db by
  default. Set "backend": "charm" in the config to sync across devices
  through Charm Cloud instead (E2E encrypted with your SSH key).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		var opts []ai.Option
		if cfg.AIBaseURL != "" {
			opts = append(opts, ai.WithBaseURL(cfg.AIBaseURL))
		}
		if cfg.AIModel != "" {
			opts = append(opts, ai.WithModel(cfg.AIModel))
		}
		analyzer := ai.NewAnalyzer(ai.NewClient(opts...))

		checker := interact.Checker{Symmetric: cfg.SymmetricInteractions}
		session = state.NewSession(analyzer, checker, repo)

		if err := session.Restore(); err != nil {
			return fmt.Errorf("failed to restore session: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
