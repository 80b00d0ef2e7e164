// Package screener holds the stateless checks used during a screening
// interview: field validators, answer substance, tech stack splitting and
// sentiment classification.
package screener

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// "and" only counts as a separator when it stands alone ("Android" stays whole)
	andSeparator = regexp.MustCompile(`\band\b`)
)

// Experience bounds, in years
const (
	MinExperience = 0
	MaxExperience = 50
)

// ValidateEmail reports whether s looks like local@domain.tld
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone strips spaces, hyphens and plus signs, then requires 7-15 digits
func ValidatePhone(s string) bool {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '-', '+':
			return -1
		}
		if isSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(clean) < 7 || len(clean) > 15 {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateExperience accepts any number of years between 0 and 50 inclusive.
// Unparseable input is simply invalid.
func ValidateExperience(s string) bool {
	years, ok := ParseExperience(s)
	if !ok {
		return false
	}
	return years >= MinExperience && years <= MaxExperience
}

// ParseExperience parses a years-of-experience value. NaN and infinities are
// rejected.
func ParseExperience(s string) (float64, bool) {
	years, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(years) || math.IsInf(years, 0) {
		return 0, false
	}
	return years, true
}

// ValidateAnswer reports whether an answer has at least two words.
//
// This is intentionally weak: it catches "yes"/"no" style replies but will
// happily accept any two words.
func ValidateAnswer(s string) bool {
	return len(strings.Fields(s)) >= 2
}

// SplitTechStack splits a free-text stack on commas and the word "and".
// Tokens are trimmed and empty ones dropped.
func SplitTechStack(s string) []string {
	normalized := andSeparator.ReplaceAllString(s, ",")

	var tokens []string
	for _, part := range strings.Split(normalized, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
