package interview

import (
	"github.com/cbroglie/mustache"

	"github.com/neilberkman/talentscout/pkg/screener"
)

// FallbackQuestion replaces an empty or failed generation
const FallbackQuestion = "Tell me about your most challenging project."

const (
	msgGreeting = "Hello! I'm TalentScout, an AI hiring assistant. I'll be collecting some basic details and asking a few technical questions to understand your skill set. Your information is used only for screening purposes."

	msgStart          = "Great! Let's get started. "
	msgTechStack      = "Thanks! Now, could you please list your tech stack (Programming languages, frameworks, databases, etc.)?"
	msgTechStackShort = "Could you be a bit more specific about your tech stack?"
	msgTechExpansion  = "You mentioned {{{stack}}}. Do you also use any specific frameworks, libraries, or databases with it?"

	msgGenerating  = "I'm generating some technical questions for you... please wait a moment."
	msgQuestionSet = "Okay, I have {{count}} questions for you. Let's start."
	msgNoQuestions = "I couldn't generate specific questions, but let's proceed. " + FallbackQuestion

	msgClarifyAnswer = "It looks like your response may be incomplete. Could you please elaborate?"

	msgExit            = "Thank you for your time. Our recruitment team will review your responses and reach out if there's a match. Have a great day!"
	msgScreeningDone   = "That concludes the technical screening. Thank you for your responses!"
	msgReviewNotice    = "Our team will review your profile. Have a wonderful day!"
	msgAlreadyDone     = "The interview is complete. You can close this window."
	msgUnexpectedPhase = "Something went wrong on our side. Please type 'exit' to end the interview."
)

// Experience framing, keyed by bucket
const (
	msgExpJunior  = "Since you have {{{years}}} years of experience, I'll focus on core fundamentals."
	msgExpMid     = "With {{{years}}} years of experience, we'll dive into some practical scenarios."
	msgExpSenior  = "Given your {{{years}}} years of experience, these questions will touch on advanced concepts and architecture."
	msgExpGeneric = "I've prepared some questions based on your background."
)

var encouragements = []string{
	"No worries, take your time.",
	"That's a complex topic, just give it your best shot.",
	"You're doing great, just a few more steps.",
}

var acknowledgments = []string{
	"Great, concise answer.",
	"Excellent point.",
	"Good.",
	"Noted.",
}

// acknowledgeChance gates the confident-answer acknowledgment
const acknowledgeChance = 0.3

var exitKeywords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
	"stop": true,
	"end":  true,
}

// experienceMessage frames the upcoming questions by seniority
func experienceMessage(years string) string {
	v, ok := screener.ParseExperience(years)
	if !ok {
		return msgExpGeneric
	}

	tmpl := msgExpSenior
	switch {
	case v <= 2:
		tmpl = msgExpJunior
	case v <= 5:
		tmpl = msgExpMid
	}
	return render(tmpl, map[string]interface{}{"years": years}, msgExpGeneric)
}

func render(tmpl string, data map[string]interface{}, fallback string) string {
	out, err := mustache.Render(tmpl, data)
	if err != nil {
		return fallback
	}
	return out
}
