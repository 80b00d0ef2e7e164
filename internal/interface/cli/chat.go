package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interview as a plain line-by-line chat",
	Long: `Run a screening interview on stdin/stdout without the terminal UI.

Each line you type is one turn. Type "exit", "quit", "bye", "stop" or "end" to stop.
Useful for piping scripted answers or for terminals without alt-screen support.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// Only animate when a human is watching
	var progress io.Writer = io.Discard
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = os.Stderr
	}

	_, err = chatLoop(cmd.Context(), a.engine, os.Stdin, os.Stdout, progress)
	return err
}

// chatLoop drives one session from line input until it finishes or input ends
func chatLoop(ctx context.Context, engine *interview.Engine, in io.Reader, out, progress io.Writer) (*models.Session, error) {
	s := engine.Start()
	printMessages(out, s.Transcript)

	scanner := bufio.NewScanner(in)
	for !s.Done() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		var spinner *Spinner
		if s.Phase == models.PhaseTechStack || s.Phase == models.PhaseTechStackExpansion {
			spinner = NewSpinner(progress, "Generating questions...")
			spinner.Start()
		}

		replies := engine.Handle(ctx, s, scanner.Text())

		if spinner != nil {
			spinner.Stop()
		}
		printMessages(out, replies)
	}

	if err := scanner.Err(); err != nil {
		return s, fmt.Errorf("failed to read input: %w", err)
	}
	return s, nil
}

func printMessages(out io.Writer, msgs []models.Message) {
	for _, m := range msgs {
		if m.Speaker == models.SpeakerAssistant {
			fmt.Fprintf(out, "TalentScout: %s\n", m.Text)
		}
	}
}
