package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
)

const (
	sidebarWidth  = 34
	inputHeight   = 3
	headerHeight  = 2
	minChatWidth  = 40
	defaultWidth  = 100
	defaultHeight = 30
)

type Model struct {
	ctx     context.Context
	engine  *interview.Engine
	session *models.Session

	// Copies of session state, refreshed after each turn so View never
	// reads the session while a turn is in flight
	transcript []models.Message
	snapshot   models.Snapshot

	input       textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	infoBar     progress.Model
	questionBar progress.Model
	help        help.Model
	keys        keymap

	width    int
	height   int
	busy     bool
	showHelp bool
	status   string
	err      error
	now      time.Time
}

// New creates the chat UI around a fresh session
func New(ctx context.Context, engine *interview.Engine) Model {
	s := engine.Start()

	input := textinput.New()
	input.Placeholder = "Type your answer and press enter"
	input.Prompt = "› "
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	m := Model{
		ctx:         ctx,
		engine:      engine,
		session:     s,
		transcript:  append([]models.Message(nil), s.Transcript...),
		snapshot:    engine.Snapshot(s),
		input:       input,
		spinner:     sp,
		infoBar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		questionBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:        help.New(),
		keys:        defaultKeymap(),
		now:         time.Now(),
	}
	return m.resize(defaultWidth, defaultHeight)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, copyTranscript(m.transcript)
		case key.Matches(msg, m.keys.ScrollUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keys.Send):
			return m.submit()
		}

		if m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case turnDoneMsg:
		m.busy = false
		m.status = ""
		m.transcript = msg.transcript
		m.snapshot = msg.snapshot
		m.input.Focus()
		if m.snapshot.Phase == models.PhaseFinished {
			m.input.Placeholder = "Interview complete. Press esc to quit."
		}
		m.refreshTranscript()
		return m, m.progressCmd()

	case copiedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("clipboard unavailable: %w", msg.err)
			m.status = ""
		} else {
			m.err = nil
			m.status = "Transcript copied to clipboard!"
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		var cmds []tea.Cmd
		infoModel, cmd := m.infoBar.Update(msg)
		m.infoBar = infoModel.(progress.Model)
		cmds = append(cmds, cmd)
		questionModel, cmd := m.questionBar.Update(msg)
		m.questionBar = questionModel.(progress.Model)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// submit sends the input line to the engine. Input is ignored while a turn
// (usually question generation) is running.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	m.busy = true
	m.err = nil
	m.status = "Thinking..."

	// Show the user's line right away; the turn result replaces it
	m.transcript = append(m.transcript, models.Message{
		Speaker: models.SpeakerUser,
		Text:    text,
		At:      time.Now(),
	})
	m.refreshTranscript()

	return m, tea.Batch(
		m.spinner.Tick,
		runTurn(m.ctx, m.engine, m.session, text),
	)
}

func (m Model) progressCmd() tea.Cmd {
	return tea.Batch(
		m.infoBar.SetPercent(ratio(m.snapshot.InfoIndex, m.snapshot.InfoTotal)),
		m.questionBar.SetPercent(ratio(m.snapshot.QuestionIndex, m.snapshot.QuestionTotal)),
	)
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height

	chatWidth := width - sidebarWidth - 2
	if chatWidth < minChatWidth {
		chatWidth = minChatWidth
	}
	chatHeight := height - inputHeight - headerHeight - 1
	if chatHeight < 5 {
		chatHeight = 5
	}

	m.viewport = viewport.New(chatWidth, chatHeight)
	m.input.Width = chatWidth - 4
	m.infoBar.Width = sidebarWidth - 6
	m.questionBar.Width = sidebarWidth - 6
	m.help.Width = width
	m.refreshTranscript()
	return m
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(renderTranscript(m.transcript, m.viewport.Width))
	m.viewport.GotoBottom()
}

// Done reports whether the interview has finished
func (m Model) Done() bool {
	return m.snapshot.Phase == models.PhaseFinished
}

// Transcript returns the messages shown so far
func (m Model) Transcript() []models.Message {
	return append([]models.Message(nil), m.transcript...)
}

func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	r := float64(n) / float64(total)
	if r > 1 {
		return 1
	}
	return r
}
