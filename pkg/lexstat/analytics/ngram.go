package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Order selects how n-gram results are sorted by count.
type Order string

const (
	Desc Order = "desc"
	Asc  Order = "asc"
)

// ParseOrder maps "asc"/"desc" to an Order. The empty string means Desc.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", Desc:
		return Desc, nil
	case Asc:
		return Asc, nil
	default:
		return "", fmt.Errorf("sort order %q must be asc or desc: %w", s, internalerr.ErrInvalidInput)
	}
}

// NGram is an ordered token sequence.
type NGram []string

// String returns the n-gram as a space-separated string
func (ng NGram) String() string {
	return strings.Join(ng, " ")
}

// NGramCount is an n-gram key with its corpus-wide count.
type NGramCount struct {
	NGram string `json:"ngram"`
	Count int    `json:"count"`
}

// Query selects which n-grams to extract.
type Query struct {
	N         int
	StartWord string
	MinCount  int
	Order     Order
}

// Validate reports usage errors in q.
func (q Query) Validate() error {
	if q.N < 1 {
		return fmt.Errorf("n-gram size %d must be at least 1: %w", q.N, internalerr.ErrInvalidInput)
	}
	if strings.TrimSpace(q.StartWord) == "" {
		return fmt.Errorf("start word required: %w", internalerr.ErrInvalidInput)
	}
	if q.Order != "" && q.Order != Asc && q.Order != Desc {
		return fmt.Errorf("sort order %q must be asc or desc: %w", q.Order, internalerr.ErrInvalidInput)
	}
	return nil
}

// NGrams counts every width-N window that starts with the query's start
// word. Windows never cross line boundaries. Entries below MinCount are
// dropped; the rest are sorted by count (Order) with the n-gram string
// ascending as tie-break.
func NGrams(lines [][]string, q Query) ([]NGramCount, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	target := strings.ToLower(q.StartWord)

	counts := make(map[string]int)
	for _, tokens := range lines {
		for i := 0; i+q.N <= len(tokens); i++ {
			window := NGram(tokens[i : i+q.N])
			if window[0] != target || hasEmpty(window) {
				continue
			}
			counts[window.String()]++
		}
	}

	out := make([]NGramCount, 0, len(counts))
	for key, count := range counts {
		if count < q.MinCount {
			continue
		}
		out = append(out, NGramCount{NGram: key, Count: count})
	}

	asc := q.Order == Asc
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].NGram < out[j].NGram
		}
		if asc {
			return out[i].Count < out[j].Count
		}
		return out[i].Count > out[j].Count
	})
	return out, nil
}

// Bigrams is NGrams with N fixed at 2.
func Bigrams(lines [][]string, startWord string, minCount int, order Order) ([]NGramCount, error) {
	return NGrams(lines, Query{N: 2, StartWord: startWord, MinCount: minCount, Order: order})
}

func hasEmpty(window NGram) bool {
	for _, tok := range window {
		if tok == "" {
			return true
		}
	}
	return false
}
