package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
)

// turnDoneMsg carries the result of one engine turn back to the UI
type turnDoneMsg struct {
	transcript []models.Message
	snapshot   models.Snapshot
}

type copiedMsg struct {
	err error
}

type tickMsg time.Time

// runTurn hands text to the engine off the UI goroutine. The session is
// only touched here while the model is busy.
func runTurn(ctx context.Context, engine *interview.Engine, s *models.Session, text string) tea.Cmd {
	return func() tea.Msg {
		engine.Handle(ctx, s, text)
		return turnDoneMsg{
			transcript: append([]models.Message(nil), s.Transcript...),
			snapshot:   engine.Snapshot(s),
		}
	}
}

// copyTranscript puts the plain-text transcript on the clipboard
func copyTranscript(transcript []models.Message) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(FormatTranscript(transcript))}
	}
}

// tick refreshes the elapsed-time display
func tick() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
