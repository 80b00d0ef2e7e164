// Package interview runs the screening conversation: greeting, intake
// fields, tech stack, then generated technical questions.
package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/neilberkman/talentscout/internal/core/logging"
	"github.com/neilberkman/talentscout/internal/core/models"
	"github.com/neilberkman/talentscout/internal/core/questions"
	"github.com/neilberkman/talentscout/pkg/screener"
)

const (
	// DefaultTimeout bounds one question-generation call
	DefaultTimeout = 30 * time.Second
	// DefaultMaxQuestions caps the questions asked per interview
	DefaultMaxQuestions = 6
)

// Engine drives sessions. It holds no per-session state, so one Engine can
// serve many sessions as long as each session sees one turn at a time.
type Engine struct {
	generator    questions.Generator
	scorer       screener.Scorer
	rand         Rand
	timeout      time.Duration
	logger       *slog.Logger
	fields       []Field
	maxQuestions int
	now          func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithScorer sets the sentiment scorer (nil classifies everything neutral)
func WithScorer(s screener.Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithRand sets the source for cosmetic message selection
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// WithTimeout bounds each generator call; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithLogger sets the engine logger
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFields replaces the intake fields
func WithFields(fields []Field) Option {
	return func(e *Engine) {
		if len(fields) > 0 {
			e.fields = fields
		}
	}
}

// WithMaxQuestions caps how many generated questions are asked
func WithMaxQuestions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxQuestions = n
		}
	}
}

// WithClock overrides time.Now for message timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine. A nil generator is allowed; every interview then
// uses the fallback question.
func New(generator questions.Generator, opts ...Option) *Engine {
	e := &Engine{
		generator:    generator,
		scorer:       screener.NewLexiconScorer(),
		rand:         globalRand{},
		timeout:      DefaultTimeout,
		logger:       logging.Discard(),
		fields:       DefaultFields(),
		maxQuestions: DefaultMaxQuestions,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fields returns the intake fields in order
func (e *Engine) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Start opens a new session and greets the candidate
func (e *Engine) Start() *models.Session {
	s := &models.Session{
		ID:        uuid.NewString(),
		StartedAt: e.now(),
		Phase:     models.PhaseGreeting,
	}
	s.Transcript = append(s.Transcript, e.message(models.SpeakerAssistant, msgGreeting))
	e.logger.Info("session started", "session_id", s.ID)
	return s
}

// turn collects the assistant messages produced while handling one input
type turn struct {
	e   *Engine
	s   *models.Session
	out []models.Message
}

func (t *turn) say(text string) {
	m := t.e.message(models.SpeakerAssistant, text)
	t.s.Transcript = append(t.s.Transcript, m)
	t.out = append(t.out, m)
}

// Handle processes one user submission, mutating s, and returns the
// assistant messages emitted in response. Whitespace-only input is ignored.
func (e *Engine) Handle(ctx context.Context, s *models.Session, text string) []models.Message {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.Transcript = append(s.Transcript, e.message(models.SpeakerUser, text))
	t := &turn{e: e, s: s}
	from := s.Phase

	if exitKeywords[strings.ToLower(text)] {
		s.Phase = models.PhaseFinished
		t.say(msgExit)
		e.logTransition(s, from, "exit keyword")
		return t.out
	}

	switch s.Phase {
	case models.PhaseGreeting:
		s.Phase = models.PhaseCollectingInfo
		t.say(msgStart + e.fields[0].Prompt)
	case models.PhaseCollectingInfo:
		e.collectInfo(t, text)
	case models.PhaseTechStack:
		e.techStack(ctx, t, text)
	case models.PhaseTechStackExpansion:
		combined := s.TechStackDraft + ", " + text
		s.TechStackDraft = ""
		e.startScreening(ctx, t, combined)
	case models.PhaseScreening:
		e.screen(t, text)
	case models.PhaseFinished:
		t.say(msgAlreadyDone)
	default:
		e.logger.Error("unexpected phase", "session_id", s.ID, "phase", s.Phase.String())
		t.say(msgUnexpectedPhase)
	}

	e.logTransition(s, from, "")
	return t.out
}

func (e *Engine) collectInfo(t *turn, text string) {
	s := t.s
	if s.InfoIndex >= len(e.fields) {
		// Fields were all collected but the phase never moved on
		s.Phase = models.PhaseTechStack
		t.say(msgTechStack)
		return
	}

	field := e.fields[s.InfoIndex]
	if !field.validate(text) {
		e.logger.Debug("validation failed", "session_id", s.ID, "field", field.Key)
		t.say(field.correction())
		return
	}

	s.Collected.Set(field.Key, text)
	s.InfoIndex++

	if s.InfoIndex < len(e.fields) {
		t.say(e.fields[s.InfoIndex].Prompt)
		return
	}
	s.Phase = models.PhaseTechStack
	t.say(msgTechStack)
}

func (e *Engine) techStack(ctx context.Context, t *turn, text string) {
	if utf8.RuneCountInString(text) < 3 {
		t.say(msgTechStackShort)
		return
	}

	if len(screener.SplitTechStack(text)) < 2 {
		t.s.TechStackDraft = text
		t.s.Phase = models.PhaseTechStackExpansion
		t.say(render(msgTechExpansion, map[string]interface{}{"stack": text}, msgTechStackShort))
		return
	}

	e.startScreening(ctx, t, text)
}

func (e *Engine) startScreening(ctx context.Context, t *turn, stack string) {
	s := t.s
	s.Collected.Set(models.KeyTechStack, stack)

	experience, _ := s.Collected.Get(models.KeyExperience)
	t.say(experienceMessage(experience))
	t.say(msgGenerating)

	qs := e.generate(ctx, s, stack, experience)
	if len(qs) > e.maxQuestions {
		qs = qs[:e.maxQuestions]
	}

	s.QuestionIndex = 0
	s.Phase = models.PhaseScreening

	if len(qs) == 0 {
		s.Questions = []string{FallbackQuestion}
		t.say(msgNoQuestions)
		return
	}

	s.Questions = qs
	t.say(render(msgQuestionSet, map[string]interface{}{"count": len(qs)}, msgGenerating))
	t.say("1. " + qs[0])
}

// generate calls the generator under the engine timeout. Errors, panics,
// timeouts and blank entries all reduce to fewer (possibly zero) questions.
func (e *Engine) generate(ctx context.Context, s *models.Session, stack, experience string) []string {
	if e.generator == nil {
		e.logger.Warn("no question generator configured", "session_id", s.ID)
		return nil
	}

	ctx = logging.WithSessionID(ctx, s.ID)
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	type result struct {
		questions []string
		err       error
	}
	done := make(chan result, 1)
	started := time.Now()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		qs, err := e.generator.Generate(ctx, stack, experience)
		done <- result{questions: qs, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if res.err != nil {
		e.logger.Warn("question generation failed",
			"session_id", s.ID,
			"error", res.err,
			"elapsed", time.Since(started))
		return nil
	}

	var out []string
	for _, q := range res.questions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	e.logger.Info("questions generated",
		"session_id", s.ID,
		"count", len(out),
		"elapsed", time.Since(started))
	return out
}

func (e *Engine) screen(t *turn, text string) {
	s := t.s
	if _, ok := s.CurrentQuestion(); !ok {
		e.finish(t)
		return
	}

	if !screener.ValidateAnswer(text) {
		t.say(msgClarifyAnswer)
		return
	}

	switch screener.ClassifySentiment(e.scorer, text) {
	case screener.SentimentUncertain:
		t.say(pick(e.rand, encouragements))
	case screener.SentimentConfident:
		if e.rand.Float64() < acknowledgeChance {
			t.say(pick(e.rand, acknowledgments))
		}
	case screener.SentimentNeutral:
	}

	s.Collected.Set(models.AnswerKey(s.QuestionIndex), text)
	s.QuestionIndex++

	if q, ok := s.CurrentQuestion(); ok {
		t.say(fmt.Sprintf("%d. %s", s.QuestionIndex+1, q))
		return
	}
	e.finish(t)
}

func (e *Engine) finish(t *turn) {
	t.s.Phase = models.PhaseFinished
	t.say(msgScreeningDone)
	t.say(msgReviewNotice)
}

// Snapshot returns the progress view of s
func (e *Engine) Snapshot(s *models.Session) models.Snapshot {
	name, _ := s.Collected.Get(models.KeyFullName)
	role, _ := s.Collected.Get(models.KeyDesiredRole)
	return models.Snapshot{
		SessionID:     s.ID,
		Phase:         s.Phase,
		InfoIndex:     s.InfoIndex,
		InfoTotal:     len(e.fields),
		QuestionIndex: s.QuestionIndex,
		QuestionTotal: len(s.Questions),
		Name:          name,
		Role:          role,
		StartedAt:     s.StartedAt,
	}
}

func (e *Engine) message(speaker models.Speaker, text string) models.Message {
	return models.Message{Speaker: speaker, Text: text, At: e.now()}
}

func (e *Engine) logTransition(s *models.Session, from models.Phase, reason string) {
	if s.Phase == from {
		return
	}
	args := []any{"session_id", s.ID, "from", from.String(), "to", s.Phase.String()}
	if reason != "" {
		args = append(args, "reason", reason)
	}
	e.logger.Info("phase transition", args...)
}
