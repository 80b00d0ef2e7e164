package llm

import (
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/neilberkman/talentscout/pkg/screener"
)

// MaxPromptTechnologies caps how many stack entries reach the prompt
const MaxPromptTechnologies = 5

// BuildQuestionPrompt renders the question-generation template for a
// candidate's stack and years of experience
func BuildQuestionPrompt(tmpl, techStack, experience string) (string, error) {
	techs := screener.SplitTechStack(techStack)
	if len(techs) > MaxPromptTechnologies {
		techs = techs[:MaxPromptTechnologies]
	}

	templateData := map[string]interface{}{
		"experience": experience,
		"tech_list":  strings.Join(techs, ", "),
	}

	prompt, err := mustache.Render(tmpl, templateData)
	if err != nil {
		return "", fmt.Errorf("failed to render question prompt: %w", err)
	}
	return prompt, nil
}
