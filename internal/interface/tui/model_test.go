package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(context.Background(), interview.New(nil))
}

func TestNew(t *testing.T) {
	m := newTestModel(t)

	if len(m.transcript) != 1 {
		t.Fatalf("expected greeting in transcript, got %d messages", len(m.transcript))
	}
	if m.snapshot.Phase != models.PhaseGreeting {
		t.Errorf("phase = %v, want greeting", m.snapshot.Phase)
	}
	if m.snapshot.InfoTotal != 6 {
		t.Errorf("InfoTotal = %d, want 6", m.snapshot.InfoTotal)
	}
}

func TestSubmit(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.busy {
		t.Error("expected model to be busy during a turn")
	}
	if cmd == nil {
		t.Fatal("expected a command for the turn")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if last := m.transcript[len(m.transcript)-1]; last.Speaker != models.SpeakerUser || last.Text != "hello" {
		t.Errorf("user line not echoed: %+v", last)
	}

	// A second enter while busy is ignored
	m.input.SetValue("again")
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command while busy")
	}
	if updated.(Model).input.Value() != "again" {
		t.Error("input should be left alone while busy")
	}
}

func TestSubmit_Blank(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || updated.(Model).busy {
		t.Error("blank input should not start a turn")
	}
}

func TestTurnDone(t *testing.T) {
	m := newTestModel(t)

	msg := runTurn(context.Background(), m.engine, m.session, "hi")()
	done, ok := msg.(turnDoneMsg)
	if !ok {
		t.Fatalf("expected turnDoneMsg, got %T", msg)
	}

	m.busy = true
	updated, _ := m.Update(done)
	m = updated.(Model)

	if m.busy {
		t.Error("expected busy cleared")
	}
	if m.snapshot.Phase != models.PhaseCollectingInfo {
		t.Errorf("phase = %v", m.snapshot.Phase)
	}
	if len(m.transcript) != 3 {
		t.Errorf("transcript has %d messages, want 3", len(m.transcript))
	}
	if !strings.Contains(renderSidebar(m), "Collecting Details") {
		t.Error("sidebar should show current phase")
	}
}

func TestTurnDone_Finished(t *testing.T) {
	m := newTestModel(t)
	done := runTurn(context.Background(), m.engine, m.session, "quit")().(turnDoneMsg)

	updated, _ := m.Update(done)
	m = updated.(Model)

	if !m.Done() {
		t.Error("expected finished model")
	}
	if !strings.Contains(m.input.Placeholder, "complete") {
		t.Errorf("placeholder = %q", m.input.Placeholder)
	}
}

func TestRenderSidebar(t *testing.T) {
	m := newTestModel(t)
	m.now = m.snapshot.StartedAt.Add(3 * time.Minute)
	m.snapshot = models.Snapshot{
		Phase:         models.PhaseScreening,
		InfoIndex:     6,
		InfoTotal:     6,
		QuestionIndex: 2,
		QuestionTotal: 5,
		Name:          "Ada Lovelace",
		Role:          "Backend Engineer",
		StartedAt:     m.snapshot.StartedAt,
	}

	out := renderSidebar(m)
	for _, want := range []string{
		"Technical Interview",
		"Details 6/6",
		"Questions 2/5",
		"Ada Lovelace",
		"Backend Engineer",
		"3 minutes ago",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q:\n%s", want, out)
		}
	}
}

func TestPhaseLabels(t *testing.T) {
	for _, p := range models.AllPhases() {
		if _, ok := phaseLabels[p]; !ok {
			t.Errorf("no label for phase %s", p)
		}
	}
}

func TestFormatTranscript(t *testing.T) {
	got := FormatTranscript([]models.Message{
		{Speaker: models.SpeakerAssistant, Text: "What is your full name?"},
		{Speaker: models.SpeakerUser, Text: "Ada"},
	})
	want := "TalentScout: What is your full name?\nCandidate: Ada\n"
	if got != want {
		t.Errorf("FormatTranscript() = %q, want %q", got, want)
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = updated.(Model)

	if m.viewport.Width != 140-sidebarWidth-2 {
		t.Errorf("viewport width = %d", m.viewport.Width)
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestCopyFailureShowsError(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(copiedMsg{err: errors.New("no clipboard utility")})
	m = updated.(Model)
	if m.err == nil {
		t.Fatal("expected copy failure to be recorded")
	}
	if !strings.Contains(m.inputView(), "Error: clipboard unavailable: no clipboard utility") {
		t.Errorf("input view missing error: %q", m.inputView())
	}

	// The next submit clears it
	m.input.SetValue("hello")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if updated.(Model).err != nil {
		t.Error("expected submit to clear the error")
	}

	updated, _ = m.Update(copiedMsg{})
	m = updated.(Model)
	if m.err != nil || m.status != "Transcript copied to clipboard!" {
		t.Errorf("err = %v, status = %q after a successful copy", m.err, m.status)
	}
}
