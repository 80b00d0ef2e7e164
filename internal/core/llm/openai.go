package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider implements Provider with the OpenAI Responses API
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// GenerateText implements Provider
func (p *OpenAIProvider) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	// The Responses API takes one input string; fold the system prompt in
	input := prompt
	if system != "" {
		input = system + "\n\n" + prompt
	}
	params := responses.ResponseNewParams{
		Model:           p.model,
		MaxOutputTokens: openai.Int(DefaultMaxTokens),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(input)},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	return resp.OutputText(), nil
}

// Name implements Provider
func (p *OpenAIProvider) Name() string {
	return "openai"
}
