package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/neilberkman/talentscout/internal/interface/tui"
)

var printTranscript bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run an interview in the terminal UI",
	Long:  "Run a screening interview in a full-screen terminal chat with a progress sidebar",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&printTranscript, "print-transcript", false, "Print the transcript to stdout on exit")
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(
		tui.New(ctx, a.engine),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if m, ok := finalModel.(tui.Model); ok && printTranscript {
		fmt.Print(tui.FormatTranscript(m.Transcript()))
	}
	return nil
}
