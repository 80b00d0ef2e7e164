package screener

import (
	"errors"
	"strings"
	"unicode"
)

// Sentiment is the tone category of an interview answer
type Sentiment string

const (
	SentimentConfident Sentiment = "confident"
	SentimentUncertain Sentiment = "uncertain"
	SentimentNeutral   Sentiment = "neutral"
)

// Polarity thresholds for ClassifySentiment
const (
	ConfidentAbove = 0.3
	UncertainBelow = -0.1
)

// ErrScorerUnavailable is returned by a Scorer that cannot score right now
var ErrScorerUnavailable = errors.New("sentiment scorer unavailable")

// Scorer maps text to a polarity, roughly in [-1, 1]
type Scorer interface {
	Polarity(text string) (float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface
type ScorerFunc func(text string) (float64, error)

// Polarity implements Scorer
func (f ScorerFunc) Polarity(text string) (float64, error) {
	return f(text)
}

// ClassifySentiment buckets the polarity of text. A missing or failing scorer
// always yields SentimentNeutral: feedback is cosmetic and never blocks.
func ClassifySentiment(scorer Scorer, text string) Sentiment {
	if scorer == nil {
		return SentimentNeutral
	}

	polarity, err := scorer.Polarity(text)
	if err != nil {
		return SentimentNeutral
	}

	switch {
	case polarity > ConfidentAbove:
		return SentimentConfident
	case polarity < UncertainBelow:
		return SentimentUncertain
	default:
		return SentimentNeutral
	}
}

// LexiconScorer scores text against a small word list.
//
// Polarity is the mean of the sentiment-bearing words found. A negator flips
// and damps the next sentiment word, an intensifier scales it. Text with no
// sentiment words scores 0.
type LexiconScorer struct {
	Words        map[string]float64
	Negators     map[string]bool
	Intensifiers map[string]float64
}

// NewLexiconScorer returns a scorer loaded with the built-in English lexicon
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		Words:        defaultLexicon,
		Negators:     defaultNegators,
		Intensifiers: defaultIntensifiers,
	}
}

// Polarity implements Scorer
func (l *LexiconScorer) Polarity(text string) (float64, error) {
	if l == nil || len(l.Words) == 0 {
		return 0, ErrScorerUnavailable
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	var (
		sum     float64
		matched int
		negate  bool
		scale   = 1.0
	)
	for _, w := range words {
		if l.Negators[w] {
			negate = true
			continue
		}
		if factor, ok := l.Intensifiers[w]; ok {
			scale *= factor
			continue
		}

		score, ok := l.Words[w]
		if !ok {
			continue
		}
		score *= scale
		if negate {
			score *= -0.5
		}
		sum += score
		matched++
		negate = false
		scale = 1.0
	}

	if matched == 0 {
		return 0, nil
	}
	return clamp(sum/float64(matched), -1, 1), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var defaultNegators = map[string]bool{
	"not": true, "no": true, "never": true, "don't": true, "dont": true,
	"doesn't": true, "didn't": true, "isn't": true, "wasn't": true,
	"can't": true, "cannot": true, "won't": true, "haven't": true,
}

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"super":      1.3,
	"quite":      1.1,
	"pretty":     1.1,
	"somewhat":   0.7,
	"slightly":   0.6,
	"absolutely": 1.5,
}

// Polarity values follow the usual subjectivity-lexicon scale
var defaultLexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "confident": 0.6,
	"comfortable": 0.5, "easy": 0.43, "love": 0.5, "enjoy": 0.4,
	"best": 1.0, "better": 0.5, "strong": 0.43, "solid": 0.4,
	"expert": 0.6, "proficient": 0.6, "experienced": 0.5, "successful": 0.75,
	"success": 0.6, "efficient": 0.5, "clean": 0.37, "perfect": 1.0,
	"definitely": 0.5, "certainly": 0.5, "sure": 0.5, "happy": 0.8,
	"fast": 0.2, "reliable": 0.5, "robust": 0.5, "simple": 0.3,
	"familiar": 0.4, "skilled": 0.6, "nice": 0.6, "well": 0.4,
	"improved": 0.4, "effective": 0.6, "powerful": 0.5, "favorite": 0.5,
	// negative
	"bad": -0.7, "poor": -0.4, "difficult": -0.5, "hard": -0.3,
	"confused": -0.4, "confusing": -0.4, "unsure": -0.5, "uncertain": -0.4,
	"maybe": -0.2, "guess": -0.3, "struggle": -0.5, "struggled": -0.5,
	"weak": -0.4, "wrong": -0.5, "forgot": -0.4, "forget": -0.4,
	"unfamiliar": -0.5, "limited": -0.2, "nervous": -0.5, "worried": -0.5,
	"sorry": -0.5, "fail": -0.5, "failed": -0.5, "problem": -0.2,
	"complicated": -0.3, "slow": -0.3, "terrible": -1.0, "awful": -1.0,
	"lost": -0.4, "stuck": -0.4, "rusty": -0.4,
}
