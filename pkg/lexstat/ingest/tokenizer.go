package ingest

import (
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/stoplist"
)

// Punctuation is the set of characters stripped from token edges.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer turns raw lines into normalized tokens, removing excluded words
type Tokenizer struct {
	folder *Folder
	stops  *stoplist.Set
}

// NewTokenizer creates a tokenizer with the given exclusion set.
// A nil set excludes nothing; a nil folder lowercases without normalization.
// Exclusion entries are folded like tokens, so the caller's set is not
// modified and later changes to it are not seen.
func NewTokenizer(stops *stoplist.Set, folder *Folder) *Tokenizer {
	if folder == nil {
		folder = NewFolder(FormNone)
	}
	return &Tokenizer{folder: folder, stops: stops.Fold(folder.Fold)}
}

// Folder exposes the case folder so raw-substring paths fold text the same way.
func (t *Tokenizer) Folder() *Folder {
	return t.folder
}

// Stoplist returns the folded exclusion set in use.
func (t *Tokenizer) Stoplist() *stoplist.Set {
	return t.stops
}

// Tokenize splits one line into tokens: lowercased, whitespace-split,
// edge punctuation stripped, empty and excluded tokens dropped.
// Internal punctuation is kept ("don't", "e-mail").
func (t *Tokenizer) Tokenize(line string) []string {
	fields := strings.Fields(t.folder.Fold(line))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		word := CleanToken(f)
		if word == "" || t.stops.IsStop(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// TokenizeLines tokenizes every line, keeping line boundaries.
func (t *Tokenizer) TokenizeLines(lines []string) [][]string {
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = t.Tokenize(line)
	}
	return out
}

// Normalize tokenizes every line and concatenates the result in order.
func (t *Tokenizer) Normalize(lines []string) []string {
	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, t.Tokenize(line)...)
	}
	return tokens
}

// CleanToken strips leading and trailing punctuation
func CleanToken(word string) string {
	return strings.Trim(word, Punctuation)
}
