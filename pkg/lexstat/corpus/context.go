package corpus

import (
	"fmt"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// ContextLine is one line of a context window.
type ContextLine struct {
	Number   int    `json:"number"`
	Text     string `json:"text"`
	IsTarget bool   `json:"is_target"`
}

// Window is the clipped slice of lines around a target line.
// Start is a 0-based index and End is exclusive, so the window covers
// lines Start+1 through End in user-facing numbering.
type Window struct {
	Target int           `json:"target"`
	Radius int           `json:"radius"`
	Start  int           `json:"start"`
	End    int           `json:"end"`
	Lines  []ContextLine `json:"lines"`
}

// Context returns up to radius lines on each side of the 1-based line
// number, clipped to the corpus. Line numbers outside the corpus give a
// clipped, possibly empty, window.
func Context(c *Corpus, lineNumber, radius int) (Window, error) {
	if radius < 0 {
		return Window{}, fmt.Errorf("radius %d must not be negative: %w", radius, internalerr.ErrInvalidInput)
	}

	// Bound the inputs so the window arithmetic cannot overflow. A radius
	// beyond the corpus length and a target far outside it give the same
	// window as their clamped values.
	n := c.Len()
	r := min(radius, n)
	idx := max(min(lineNumber, n+r+1), -r) - 1
	start := max(0, idx-r)
	end := min(n, idx+r+1)
	if end < start {
		end = start
	}

	w := Window{
		Target: lineNumber,
		Radius: radius,
		Start:  start,
		End:    end,
		Lines:  make([]ContextLine, 0, end-start),
	}
	for i := start; i < end; i++ {
		w.Lines = append(w.Lines, ContextLine{
			Number:   i + 1,
			Text:     c.Line(i),
			IsTarget: i == idx,
		})
	}
	return w, nil
}
