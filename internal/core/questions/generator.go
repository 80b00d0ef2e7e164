// Package questions produces technical screening questions for a candidate's
// stack, from an LLM, an offline bank, or the SQLite cache in front of either.
package questions

import (
	"context"
	"errors"
)

// ErrNoQuestions is returned when a source produced nothing usable
var ErrNoQuestions = errors.New("no questions generated")

// Generator produces screening questions for a tech stack and experience
type Generator interface {
	Generate(ctx context.Context, techStack, experience string) ([]string, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, techStack, experience string) ([]string, error)

// Generate implements Generator
func (f GeneratorFunc) Generate(ctx context.Context, techStack, experience string) ([]string, error) {
	return f(ctx, techStack, experience)
}

// sourceName reports where questions came from, for cache rows and logs
func sourceName(g Generator) string {
	if n, ok := g.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
