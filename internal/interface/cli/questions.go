package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neilberkman/talentscout/internal/core/llm"
	"github.com/neilberkman/talentscout/pkg/screener"
)

var (
	questionsExperience string
	showPrompt          bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions <tech stack>",
	Short: "Generate screening questions for a tech stack without an interview",
	Example: `  talentscout questions "Go, PostgreSQL and Kafka" --experience 4
  talentscout questions Python --show-prompt --provider ollama`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuestions,
}

func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.Flags().StringVarP(&questionsExperience, "experience", "e", "3", "Years of experience to tailor questions to")
	questionsCmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "Print the rendered LLM prompt")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	techStack := strings.Join(args, " ")
	if !screener.ValidateExperience(questionsExperience) {
		return fmt.Errorf("invalid experience %q: expected a number between 0 and 50", questionsExperience)
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("=== CANDIDATE ===")
	fmt.Printf("Tech Stack:   %s\n", techStack)
	fmt.Printf("Technologies: %s\n", strings.Join(screener.SplitTechStack(techStack), " | "))
	fmt.Printf("Experience:   %s years\n", questionsExperience)
	fmt.Printf("Provider:     %s\n", cfg.Provider)
	fmt.Println()

	if showPrompt {
		prompt, err := llm.BuildQuestionPrompt(cfg.QuestionPromptTemplate, techStack, questionsExperience)
		if err != nil {
			return err
		}
		fmt.Println("=== SYSTEM PROMPT ===")
		fmt.Println(cfg.SystemPrompt)
		fmt.Println()
		fmt.Println("=== QUESTION PROMPT ===")
		fmt.Println(prompt)
		fmt.Println()
	}

	start := time.Now()
	qs, err := a.generator.Generate(cmd.Context(), techStack, questionsExperience)
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	fmt.Printf("=== QUESTIONS (%d, %s) ===\n", len(qs), time.Since(start).Round(time.Millisecond))
	for i, q := range qs {
		fmt.Printf("%d. %s\n", i+1, q)
	}
	return nil
}
