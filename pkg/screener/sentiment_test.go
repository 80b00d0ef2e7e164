package screener

import (
	"errors"
	"testing"
)

func fixedScorer(p float64) Scorer {
	return ScorerFunc(func(string) (float64, error) { return p, nil })
}

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name   string
		scorer Scorer
		want   Sentiment
	}{
		{"strongly positive", fixedScorer(0.8), SentimentConfident},
		{"just above threshold", fixedScorer(0.31), SentimentConfident},
		{"at upper threshold", fixedScorer(0.3), SentimentNeutral},
		{"zero", fixedScorer(0), SentimentNeutral},
		{"at lower threshold", fixedScorer(-0.1), SentimentNeutral},
		{"negative", fixedScorer(-0.5), SentimentUncertain},
		{"nil scorer", nil, SentimentNeutral},
		{"unavailable scorer", ScorerFunc(func(string) (float64, error) {
			return 0, ErrScorerUnavailable
		}), SentimentNeutral},
		{"other error", ScorerFunc(func(string) (float64, error) {
			return 0.9, errors.New("boom")
		}), SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySentiment(tt.scorer, "some answer"); got != tt.want {
				t.Errorf("ClassifySentiment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexiconScorer(t *testing.T) {
	scorer := NewLexiconScorer()

	tests := []struct {
		text string
		want Sentiment
	}{
		{"I am very confident with goroutines, it is a great tool", SentimentConfident},
		{"I'm unsure, I honestly forgot how that works", SentimentUncertain},
		{"Channels pass values between goroutines", SentimentNeutral},
		{"It was not easy", SentimentUncertain},
		{"I am not confident and this is difficult", SentimentUncertain},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ClassifySentiment(scorer, tt.text); got != tt.want {
				p, _ := scorer.Polarity(tt.text)
				t.Errorf("ClassifySentiment(%q) = %v (polarity %.2f), want %v", tt.text, got, p, tt.want)
			}
		})
	}
}

func TestLexiconScorer_Bounds(t *testing.T) {
	scorer := NewLexiconScorer()

	p, err := scorer.Polarity("absolutely extremely really excellent perfect best")
	if err != nil {
		t.Fatalf("Polarity() error = %v", err)
	}
	if p > 1 || p < -1 {
		t.Errorf("Polarity() = %v, want within [-1, 1]", p)
	}

	var empty *LexiconScorer
	if _, err := empty.Polarity("good"); !errors.Is(err, ErrScorerUnavailable) {
		t.Errorf("nil scorer error = %v, want ErrScorerUnavailable", err)
	}
}
