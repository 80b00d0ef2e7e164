package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neilberkman/talentscout/cmd/talentscout/mcp"
	"github.com/neilberkman/talentscout/internal/core/interview"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing the interview as tools",
	Long: `Start an MCP (Model Context Protocol) server on stdio so an assistant
can run screening interviews through tools: start_interview, send_message,
get_progress and get_transcript.

Example client config:
  {
    "mcpServers": {
      "talentscout": {
        "command": "talentscout",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := mcp.StartServer(interview.NewRegistry(a.engine), versionOrDev()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func versionOrDev() string {
	if rootCmd.Version != "" {
		return rootCmd.Version
	}
	return "dev"
}
