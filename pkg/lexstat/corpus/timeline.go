package corpus

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Chunk is one contiguous partition of the corpus with the number of
// times the timeline word occurs in it. Start is a 0-based index and End
// is exclusive.
type Chunk struct {
	Index       int `json:"index"`
	Start       int `json:"start"`
	End         int `json:"end"`
	Occurrences int `json:"occurrences"`
}

// StartLine is the first 1-based line number of the chunk.
func (ch Chunk) StartLine() int { return ch.Start + 1 }

// EndLine is the last 1-based line number of the chunk.
func (ch Chunk) EndLine() int { return ch.End }

// Len returns the number of lines in the chunk.
func (ch Chunk) Len() int { return ch.End - ch.Start }

// MaxChunks caps the chunk count for corpora shorter than it. A longer
// corpus accepts up to one chunk per line.
const MaxChunks = 1 << 16

// Timeline splits the corpus into chunks equal parts, folding the
// remainder into the last one, and counts occurrences of word in each.
// Each line is scanned once from left to right and a match resumes after
// the previous one ends, as strings.Count does: "aaaa" holds "aa" twice.
func Timeline(c *Corpus, word string, chunks int) ([]Chunk, error) {
	if chunks <= 0 {
		return nil, fmt.Errorf("chunk count %d must be positive: %w", chunks, internalerr.ErrInvalidInput)
	}
	if word == "" {
		return nil, fmt.Errorf("timeline word required: %w", internalerr.ErrInvalidInput)
	}
	if limit := max(c.Len(), MaxChunks); chunks > limit {
		return nil, fmt.Errorf("chunk count %d exceeds %d: %w", chunks, limit, internalerr.ErrInvalidInput)
	}

	folded := c.Fold(word)
	total := c.Len()
	size := total / chunks

	out := make([]Chunk, 0, min(chunks, total+1))
	for i := 0; i < chunks; i++ {
		start := i * size
		end := (i + 1) * size
		if i == chunks-1 {
			end = total
		}
		ch := Chunk{Index: i, Start: start, End: end}
		for j := start; j < end; j++ {
			ch.Occurrences += strings.Count(c.Folded(j), folded)
		}
		out = append(out, ch)
	}
	return out, nil
}
