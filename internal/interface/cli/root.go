package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neilberkman/talentscout/internal/core/config"
)

var (
	cfg         *config.Config
	cachePath   string
	provider    string
	noCache     bool
	debug       bool
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "talentscout",
	Short: "Conversational technical screening assistant",
	Long: `talentscout - a guided intake and technical screening conversation

Greets a candidate, collects their contact details and experience, asks for
their tech stack, then walks them through generated technical questions.

Question generation uses the provider in ~/.config/talentscout/config.toml
(bedrock, ollama, openai, anthropic) or an offline question bank.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache-db", "", "Question cache database path (default ~/.config/talentscout/cache.db)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Question provider: bedrock, ollama, openai, anthropic, none")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Disable the question cache")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs")
}

// loadConfig reads config files and applies flag overrides
func loadConfig() error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cachePath != "" {
		loaded.CachePath = cachePath
	}
	if provider != "" {
		loaded.Provider = provider
	}
	if noCache {
		loaded.CacheEnabled = false
	}
	if debug {
		loaded.Debug = true
	}

	cfg = loaded
	return nil
}
