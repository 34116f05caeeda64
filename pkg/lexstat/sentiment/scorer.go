package sentiment

import (
	"context"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/ingest"
)

// Scorer assigns a polarity in [-1, 1] to a line of text.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, text string) (float64, error)

// Score calls f(ctx, text).
func (f ScorerFunc) Score(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// negationScale flips a negated word and halves its strength:
// "not good" is mildly negative rather than as bad as "bad".
const negationScale = -0.5

// negationReach is how many tokens a negator or modifier stays pending.
const negationReach = 3

// LexiconScorer scores text as the mean polarity of its sentiment words.
type LexiconScorer struct {
	lex       *Lexicon
	negations map[string]struct{}
}

// NewLexiconScorer creates a scorer over lex (DefaultLexicon when nil).
func NewLexiconScorer(lex *Lexicon) *LexiconScorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	neg := make(map[string]struct{}, len(lex.Negations))
	for _, w := range lex.Negations {
		neg[w] = struct{}{}
	}
	return &LexiconScorer{lex: lex, negations: neg}
}

// Score returns the clamped mean polarity of the sentiment words in text,
// or 0 when there are none. It never fails.
func (s *LexiconScorer) Score(_ context.Context, text string) (float64, error) {
	var (
		sum     float64
		n       int
		negated bool
		scale   = 1.0
		pending int
	)

	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := ingest.CleanToken(field)
		if word == "" {
			continue
		}

		if s.isNegation(word) {
			negated = !negated
			pending = negationReach
			continue
		}
		if factor, ok := s.lex.Modifiers[word]; ok {
			scale *= factor
			pending = negationReach
			continue
		}

		if weight, ok := s.lex.Words[word]; ok {
			weight *= scale
			if negated {
				weight *= negationScale
			}
			sum += Clamp(weight)
			n++
			negated, scale, pending = false, 1.0, 0
			continue
		}

		if pending > 0 {
			pending--
			if pending == 0 {
				negated, scale = false, 1.0
			}
		}
	}

	if n == 0 {
		return 0, nil
	}
	return Clamp(sum / float64(n)), nil
}

func (s *LexiconScorer) isNegation(word string) bool {
	if _, ok := s.negations[word]; ok {
		return true
	}
	return strings.HasSuffix(word, "n't")
}

// Clamp limits v to [-1, 1].
func Clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
