package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

const defaultOllamaModel = "llama3.1"

// OllamaProvider implements Provider against a local Ollama server
type OllamaProvider struct {
	client *api.Client
	model  string
}

// NewOllamaProvider creates a provider for host (e.g. http://localhost:11434)
func NewOllamaProvider(host, model string) *OllamaProvider {
	parsed, err := url.Parse(host)
	if err != nil || parsed.Host == "" {
		parsed, _ = url.Parse("http://localhost:11434")
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaProvider{
		client: api.NewClient(parsed, http.DefaultClient),
		model:  model,
	}
}

// GenerateText implements Provider
func (p *OllamaProvider) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	var messages []api.Message
	if system != "" {
		messages = append(messages, api.Message{Role: "system", Content: system})
	}
	messages = append(messages, api.Message{Role: "user", Content: prompt})

	stream := false
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": DefaultTemperature,
			"top_p":       0.95,
			"seed":        42,
			"num_predict": DefaultMaxTokens,
		},
	}

	var content string
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content += resp.Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	return content, nil
}

// Name implements Provider
func (p *OllamaProvider) Name() string {
	return "ollama"
}
