package sentiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Label is the sign of an average polarity.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// LabelFor returns Positive above zero, Negative below, Neutral at zero.
func LabelFor(avg float64) Label {
	switch {
	case avg > 0:
		return Positive
	case avg < 0:
		return Negative
	default:
		return Neutral
	}
}

// ScoredLine is a matched line with its polarity.
type ScoredLine struct {
	Number int     `json:"number"`
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
}

// Summary reduces the polarity of every line mentioning Word.
// Matched == 0 means no line mentioned it; the other fields are then zero.
type Summary struct {
	Word         string      `json:"word"`
	Matched      int         `json:"matched"`
	Average      float64     `json:"average"`
	Label        Label       `json:"label,omitempty"`
	MostPositive *ScoredLine `json:"most_positive,omitempty"`
	MostNegative *ScoredLine `json:"most_negative,omitempty"`
}

// Aggregate scores every line containing word (case-insensitive) and
// reports the mean, its label, and the first highest and first lowest
// scoring lines.
func Aggregate(ctx context.Context, c *corpus.Corpus, word string, scorer Scorer) (Summary, error) {
	if word == "" {
		return Summary{}, fmt.Errorf("sentiment word required: %w", internalerr.ErrInvalidInput)
	}
	if scorer == nil {
		return Summary{}, fmt.Errorf("no polarity scorer configured: %w", internalerr.ErrInvalidConfig)
	}

	summary := Summary{Word: word}
	needle := c.Fold(word)

	var sum float64
	for i := 0; i < c.Len(); i++ {
		if !strings.Contains(c.Folded(i), needle) {
			continue
		}
		text := strings.TrimSpace(c.Line(i))
		score, err := scorer.Score(ctx, text)
		if err != nil {
			return Summary{}, fmt.Errorf("score line %d: %w: %w", i+1, internalerr.ErrScorer, err)
		}

		line := &ScoredLine{Number: i + 1, Text: text, Score: score}
		if summary.MostPositive == nil || score > summary.MostPositive.Score {
			summary.MostPositive = line
		}
		if summary.MostNegative == nil || score < summary.MostNegative.Score {
			summary.MostNegative = line
		}
		sum += score
		summary.Matched++
	}

	if summary.Matched == 0 {
		return summary, nil
	}
	summary.Average = sum / float64(summary.Matched)
	summary.Label = LabelFor(summary.Average)
	return summary, nil
}
