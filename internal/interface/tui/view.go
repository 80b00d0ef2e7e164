package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/neilberkman/talentscout/internal/core/models"
)

var phaseLabels = map[models.Phase]string{
	models.PhaseGreeting:           "Introduction",
	models.PhaseCollectingInfo:     "Collecting Details",
	models.PhaseTechStack:          "Tech Stack Analysis",
	models.PhaseTechStackExpansion: "Tech Stack Analysis",
	models.PhaseScreening:          "Technical Interview",
	models.PhaseFinished:           "Completed",
}

func phaseLabel(p models.Phase) string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return p.String()
}

func (m Model) View() string {
	header := titleStyle.Render("TalentScout") + "  " + labelStyle.Render("AI Recruitment Assistant")

	chat := lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.inputView(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, chat, " ", m.sidebarView())

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, helpStyle.Render(footer))
}

func (m Model) inputView() string {
	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("Error: " + m.err.Error())
	case m.busy:
		status = m.spinner.View() + " " + statusStyle.Render(m.status)
	case m.status != "":
		status = statusStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Repeat("─", m.viewport.Width), m.input.View(), status)
}

func (m Model) sidebarView() string {
	return sidebarStyle.Width(sidebarWidth - 2).Render(renderSidebar(m))
}

// renderSidebar shows phase, progress and the candidate summary
func renderSidebar(m Model) string {
	snap := m.snapshot
	var b strings.Builder

	b.WriteString(sidebarHeaderStyle.Render("Screening Progress"))
	b.WriteString("\n\n")

	if snap.Phase == models.PhaseFinished {
		b.WriteString(doneStyle.Render("✓ " + phaseLabel(snap.Phase)))
	} else {
		b.WriteString(phaseStyle.Render("▸ " + phaseLabel(snap.Phase)))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("Details %d/%d", snap.InfoIndex, snap.InfoTotal)))
	b.WriteString("\n")
	b.WriteString(m.infoBar.View())
	b.WriteString("\n")

	if snap.QuestionTotal > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Questions %d/%d", snap.QuestionIndex, snap.QuestionTotal)))
		b.WriteString("\n")
		b.WriteString(m.questionBar.View())
		b.WriteString("\n")
	}

	if snap.Name != "" || snap.Role != "" {
		b.WriteString("\n")
		b.WriteString(sidebarHeaderStyle.Render("Candidate Summary"))
		b.WriteString("\n")
		if snap.Name != "" {
			b.WriteString(labelStyle.Render("Name: ") + snap.Name + "\n")
		}
		if snap.Role != "" {
			b.WriteString(labelStyle.Render("Role: ") + snap.Role + "\n")
		}
	}

	if !snap.StartedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Started " + humanize.RelTime(snap.StartedAt, m.now, "ago", "from now")))
	}

	return b.String()
}

// renderTranscript formats messages for the chat viewport
func renderTranscript(msgs []models.Message, width int) string {
	wrapWidth := width - 2
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	for _, msg := range msgs {
		style, label := assistantStyle, "TalentScout"
		if msg.Speaker == models.SpeakerUser {
			style, label = userStyle, "You"
		}

		b.WriteString(style.Render("▸ " + label))
		if !msg.At.IsZero() {
			b.WriteString(" ")
			b.WriteString(timestampStyle.Render(msg.At.Format("15:04")))
		}
		b.WriteString("\n")
		b.WriteString(wordwrap.String(msg.Text, wrapWidth))
		b.WriteString("\n\n")
	}
	return b.String()
}

// FormatTranscript renders messages as plain text, one "Speaker: text" line
// per message
func FormatTranscript(msgs []models.Message) string {
	var b strings.Builder
	for _, msg := range msgs {
		label := "TalentScout"
		if msg.Speaker == models.SpeakerUser {
			label = "Candidate"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	return b.String()
}
