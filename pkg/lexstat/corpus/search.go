package corpus

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Line is a raw corpus line with its 1-based number.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Search returns every line containing needle, case-insensitively, in
// corpus order. No match yields an empty slice.
func Search(c *Corpus, needle string) ([]Line, error) {
	if needle == "" {
		return nil, fmt.Errorf("search string required: %w", internalerr.ErrInvalidInput)
	}
	folded := c.Fold(needle)
	out := []Line{}
	for i := 0; i < c.Len(); i++ {
		if strings.Contains(c.Folded(i), folded) {
			out = append(out, Line{Number: i + 1, Text: c.Line(i)})
		}
	}
	return out, nil
}
