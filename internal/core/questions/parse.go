package questions

import (
	"regexp"
	"strings"
	"unicode"
)

var listMarker = regexp.MustCompile(`^[\d\-.\s]+`)

const (
	// fallbackMinLen is the length a bare line needs to pass as a question
	fallbackMinLen = 15
	// fallbackMax caps questions taken by the bare-line strategy
	fallbackMax = 5
)

// ParseQuestions extracts questions from model output.
//
// Lines starting with a digit or "-" are list items; their leading run of
// digits, hyphens, dots and spaces is stripped. Only when no list items are
// found, raw lines longer than 15 characters are taken instead (first 5).
func ParseQuestions(content string) []string {
	lines := strings.Split(content, "\n")

	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first := rune(line[0])
		if !unicode.IsDigit(first) && first != '-' {
			continue
		}
		if cleaned := listMarker.ReplaceAllString(line, ""); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	if len(out) > 0 {
		return out
	}

	// Secondary strategy: unnumbered prose
	for _, line := range lines {
		if len(line) > fallbackMinLen {
			out = append(out, line)
			if len(out) == fallbackMax {
				break
			}
		}
	}
	return out
}
