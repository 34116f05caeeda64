package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

const polaritySystem = "You rate the sentiment polarity of a single line of text. " +
	"Reply with only a number between -1 (most negative) and 1 (most positive); 0 is neutral."

var numberPattern = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)`)

// PolarityScorer asks a chat model for the polarity of each line.
// It satisfies sentiment.Scorer.
type PolarityScorer struct {
	Client *Client
}

// NewPolarityScorer wraps client as a polarity scorer.
func NewPolarityScorer(client *Client) *PolarityScorer {
	return &PolarityScorer{Client: client}
}

// Score returns the model's polarity for text, clamped to [-1, 1].
func (p *PolarityScorer) Score(ctx context.Context, text string) (float64, error) {
	reply, err := p.Client.Chat(ctx, polaritySystem, "Text: "+text)
	if err != nil {
		return 0, err
	}
	return parsePolarity(reply)
}

// parsePolarity extracts the first number in reply.
func parsePolarity(reply string) (float64, error) {
	m := numberPattern.FindString(reply)
	if m == "" {
		return 0, fmt.Errorf("llm: no polarity in reply %q", reply)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("llm: parse polarity %q: %w", m, err)
	}
	switch {
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	return v, nil
}
