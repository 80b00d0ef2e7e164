package models

import (
	"fmt"
	"time"
)

// Phase is the stage a screening conversation is in
type Phase int

const (
	PhaseGreeting Phase = iota
	PhaseCollectingInfo
	PhaseTechStack
	PhaseTechStackExpansion
	PhaseScreening
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseGreeting:           "greeting",
	PhaseCollectingInfo:     "collecting_info",
	PhaseTechStack:          "tech_stack",
	PhaseTechStackExpansion: "tech_stack_expansion",
	PhaseScreening:          "screening",
	PhaseFinished:           "finished",
}

// AllPhases lists every phase in conversation order
func AllPhases() []Phase {
	return []Phase{
		PhaseGreeting,
		PhaseCollectingInfo,
		PhaseTechStack,
		PhaseTechStackExpansion,
		PhaseScreening,
		PhaseFinished,
	}
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase is the inverse of Phase.String
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// MarshalText encodes the phase by name so JSON snapshots stay readable
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Phase) UnmarshalText(b []byte) error {
	parsed, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Well-known keys in Session.Collected
const (
	KeyFullName    = "full_name"
	KeyEmail       = "email"
	KeyPhone       = "phone"
	KeyLocation    = "location"
	KeyExperience  = "experience"
	KeyDesiredRole = "desired_role"
	KeyTechStack   = "tech_stack"
)

// AnswerKey is the Collected key for the answer to question index i (0-based)
func AnswerKey(i int) string {
	return fmt.Sprintf("answer_q%d", i+1)
}

// Session is the full state of one screening conversation.
// It is only ever mutated by the interview engine.
type Session struct {
	ID        string
	StartedAt time.Time
	Phase     Phase

	// InfoIndex points at the next personal-info field to collect
	InfoIndex int
	Collected Record

	// TechStackDraft holds a too-short stack while we ask for more
	TechStackDraft string

	Questions     []string
	QuestionIndex int

	Transcript []Message
}

// Snapshot is the read-only progress view handed to UIs
type Snapshot struct {
	SessionID     string    `json:"session_id"`
	Phase         Phase     `json:"phase"`
	InfoIndex     int       `json:"info_index"`
	InfoTotal     int       `json:"info_total"`
	QuestionIndex int       `json:"question_index"`
	QuestionTotal int       `json:"question_total"`
	Name          string    `json:"name,omitempty"`
	Role          string    `json:"role,omitempty"`
	StartedAt     time.Time `json:"started_at"`
}

// Done reports whether the conversation has ended
func (s *Session) Done() bool {
	return s.Phase == PhaseFinished
}

// CurrentQuestion returns the question awaiting an answer, if any
func (s *Session) CurrentQuestion() (string, bool) {
	if s.Phase != PhaseScreening || s.QuestionIndex >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.QuestionIndex], true
}
