package questions

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neilberkman/talentscout/pkg/screener"
)

//go:embed bank.yaml
var defaultBankYAML []byte

// Bank is an offline question set
type Bank struct {
	Default      []string            `yaml:"default"`
	Technologies map[string][]string `yaml:"technologies"`
}

// ParseBank decodes a YAML bank. Technology keys are matched case-insensitively.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	normalized := make(map[string][]string, len(b.Technologies))
	for k, v := range b.Technologies {
		normalized[strings.ToLower(strings.TrimSpace(k))] = v
	}
	b.Technologies = normalized
	return &b, nil
}

// LoadBank reads a YAML bank from path
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	return ParseBank(data)
}

// DefaultBank returns the embedded bank
func DefaultBank() *Bank {
	b, err := ParseBank(defaultBankYAML)
	if err != nil {
		panic(err) // embedded file is fixed at build time
	}
	return b
}

// StaticGenerator serves questions from a Bank without any network calls
type StaticGenerator struct {
	bank *Bank
}

// NewStaticGenerator creates a generator over bank (DefaultBank if nil)
func NewStaticGenerator(bank *Bank) *StaticGenerator {
	if bank == nil {
		bank = DefaultBank()
	}
	return &StaticGenerator{bank: bank}
}

// Generate implements Generator: questions for each known technology in
// stack order, or the default set when none match
func (g *StaticGenerator) Generate(ctx context.Context, techStack, experience string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for _, tech := range screener.SplitTechStack(techStack) {
		out = append(out, g.bank.Technologies[strings.ToLower(tech)]...)
	}
	if len(out) == 0 {
		out = append(out, g.bank.Default...)
	}
	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

// Name implements the source name for cache rows
func (g *StaticGenerator) Name() string {
	return "static"
}
