package questions

import (
	"context"
	"fmt"

	"github.com/neilberkman/talentscout/internal/core/llm"
)

// LLMGenerator renders the question prompt and parses the model's list
type LLMGenerator struct {
	provider llm.Provider
	template string
	system   string
}

// NewLLMGenerator creates a generator over provider using a mustache
// template (see llm.BuildQuestionPrompt) and a system prompt
func NewLLMGenerator(provider llm.Provider, template, system string) *LLMGenerator {
	return &LLMGenerator{provider: provider, template: template, system: system}
}

// Generate implements Generator
func (g *LLMGenerator) Generate(ctx context.Context, techStack, experience string) ([]string, error) {
	prompt, err := llm.BuildQuestionPrompt(g.template, techStack, experience)
	if err != nil {
		return nil, err
	}

	content, err := g.provider.GenerateText(ctx, g.system, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions := ParseQuestions(content)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// Name returns the backing provider name
func (g *LLMGenerator) Name() string {
	return g.provider.Name()
}
