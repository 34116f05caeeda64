package sentiment

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds word polarities and the words that shift them.
type Lexicon struct {
	Words     map[string]float64 `yaml:"words"`
	Negations []string           `yaml:"negations"`
	Modifiers map[string]float64 `yaml:"modifiers"`
}

// ParseLexicon decodes and validates a YAML lexicon. Keys are lowercased.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var raw Lexicon
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w: %w", internalerr.ErrInvalidConfig, err)
	}

	lex := &Lexicon{
		Words:     make(map[string]float64, len(raw.Words)),
		Modifiers: make(map[string]float64, len(raw.Modifiers)),
	}
	for w, weight := range raw.Words {
		if math.IsNaN(weight) || weight < -1 || weight > 1 {
			return nil, fmt.Errorf("lexicon word %q weight %v outside [-1, 1]: %w", w, weight, internalerr.ErrInvalidConfig)
		}
		lex.Words[strings.ToLower(w)] = weight
	}
	for w, factor := range raw.Modifiers {
		if !(factor > 0) {
			return nil, fmt.Errorf("lexicon modifier %q factor %v must be positive: %w", w, factor, internalerr.ErrInvalidConfig)
		}
		lex.Modifiers[strings.ToLower(w)] = factor
	}
	for _, w := range raw.Negations {
		lex.Negations = append(lex.Negations, strings.ToLower(w))
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words: %w", internalerr.ErrInvalidConfig)
	}
	return lex, nil
}

// LoadLexicon reads a YAML lexicon from disk.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon: %v", err))
	}
	return lex
}
