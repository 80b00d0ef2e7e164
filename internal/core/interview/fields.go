package interview

import (
	"github.com/neilberkman/talentscout/internal/core/models"
	"github.com/neilberkman/talentscout/pkg/screener"
)

// Field is one personal-info question asked during intake
type Field struct {
	Key        string
	Prompt     string
	Validate   func(string) bool
	Correction string
}

// DefaultFields returns the intake fields in the order they are asked
func DefaultFields() []Field {
	return []Field{
		{Key: models.KeyFullName, Prompt: "What is your full name?", Validate: nonEmpty},
		{
			Key:        models.KeyEmail,
			Prompt:     "What is your email address?",
			Validate:   screener.ValidateEmail,
			Correction: "That doesn't look like a valid email. Please try again.",
		},
		{
			Key:        models.KeyPhone,
			Prompt:     "What is your phone number?",
			Validate:   screener.ValidatePhone,
			Correction: "Please enter a valid phone number (digits only).",
		},
		{Key: models.KeyLocation, Prompt: "Where are you currently located?", Validate: nonEmpty},
		{
			Key:        models.KeyExperience,
			Prompt:     "How many years of professional experience do you have?",
			Validate:   screener.ValidateExperience,
			Correction: "Please enter a valid number for years of experience.",
		},
		{Key: models.KeyDesiredRole, Prompt: "What position are you applying for?", Validate: nonEmpty},
	}
}

func nonEmpty(s string) bool {
	return s != ""
}

func (f Field) validate(s string) bool {
	if f.Validate == nil {
		return nonEmpty(s)
	}
	return f.Validate(s)
}

func (f Field) correction() string {
	if f.Correction == "" {
		return "Please provide a value for " + f.Prompt
	}
	return f.Correction
}
