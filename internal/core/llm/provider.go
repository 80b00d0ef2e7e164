package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neilberkman/talentscout/internal/core/config"
)

const (
	// DefaultMaxTokens bounds a question-generation completion
	DefaultMaxTokens = 1000
	// DefaultTemperature keeps generation nearly deterministic
	DefaultTemperature = 0.1
)

var (
	// ErrUnknownProvider is returned for an unrecognized provider name
	ErrUnknownProvider = errors.New("unknown llm provider")
	// ErrMissingAPIKey is returned when a hosted provider has no key configured
	ErrMissingAPIKey = errors.New("missing api key")
)

// Provider is the interface for LLM backends
type Provider interface {
	// GenerateText generates text from a system prompt and a user prompt
	GenerateText(ctx context.Context, system, prompt string) (string, error)

	// Name returns the provider name (e.g., "bedrock", "anthropic", "openai")
	Name() string
}

// NewProvider builds the provider named by cfg.Provider.
// Returns nil, nil for "none" so callers fall back to the offline bank.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "none":
		return nil, nil
	case "bedrock":
		p, err := NewBedrockProvider(ctx, BedrockConfig{
			Region:  cfg.BedrockRegion,
			ModelID: cfg.Model,
			Profile: cfg.BedrockProfile,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		return NewOllamaProvider(cfg.OllamaHost, cfg.Model), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", ErrMissingAPIKey)
		}
		return NewAnthropicProvider(cfg.AnthropicKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
