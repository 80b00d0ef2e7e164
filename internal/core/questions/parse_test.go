package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "numbered list",
			content: "1. What is a goroutine?\n2. How do channels block?\n",
			want:    []string{"What is a goroutine?", "How do channels block?"},
		},
		{
			name:    "dashes and headers",
			content: "Here are your questions:\n- Explain REST.\n  - Explain GraphQL.\nGood luck!",
			want:    []string{"Explain REST.", "Explain GraphQL."},
		},
		{
			name:    "multi-digit markers",
			content: "10. Tenth question here\n11 - Eleventh question",
			want:    []string{"Tenth question here", "Eleventh question"},
		},
		{
			name:    "marker only lines dropped",
			content: "1.\n2. Real question?",
			want:    []string{"Real question?"},
		},
		{
			name:    "prose fallback",
			content: "What is dependency injection?\nshort\nHow do you profile a slow query?",
			want:    []string{"What is dependency injection?", "How do you profile a slow query?"},
		},
		{
			name: "prose fallback caps at five",
			content: "Question number one is long\nQuestion number two is long\nQuestion number three is long\n" +
				"Question number four is long\nQuestion number five is long\nQuestion number six is long",
			want: []string{
				"Question number one is long", "Question number two is long", "Question number three is long",
				"Question number four is long", "Question number five is long",
			},
		},
		{
			name:    "nothing usable",
			content: "ok\n\nsure",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuestions(tt.content))
		})
	}
}
