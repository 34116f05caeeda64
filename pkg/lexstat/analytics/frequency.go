package analytics

import (
	"slices"
	"sort"
	"strings"
)

// WordCount is a token with its number of occurrences.
type WordCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Table maps tokens to occurrence counts and remembers the order in
// which each token was first seen.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count builds a frequency table in one pass over tokens.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, tok := range tokens {
		t.Add(tok)
	}
	return t
}

// Add records one occurrence of tok.
func (t *Table) Add(tok string) {
	if _, ok := t.counts[tok]; !ok {
		t.order = append(t.order, tok)
	}
	t.counts[tok]++
	t.total++
}

// Get returns the count for tok (0 when unseen).
func (t *Table) Get(tok string) int {
	return t.counts[tok]
}

// Distinct returns the number of distinct tokens.
func (t *Table) Distinct() int {
	return len(t.order)
}

// Total returns the number of tokens counted. It always equals the sum of
// all counts.
func (t *Table) Total() int {
	return t.total
}

// Entries returns every token with its count in first-occurrence order.
func (t *Table) Entries() []WordCount {
	out := make([]WordCount, 0, len(t.order))
	for _, tok := range t.order {
		out = append(out, WordCount{Token: tok, Count: t.counts[tok]})
	}
	return out
}

// Top returns the k most frequent tokens. Equal counts keep
// first-occurrence order. k <= 0 yields an empty result.
func (t *Table) Top(k int) []WordCount {
	if k <= 0 {
		return []WordCount{}
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Once returns tokens seen exactly once that contain filter, sorted
// ascending. filter is expected in folded form; "" matches everything.
func (t *Table) Once(filter string) []string {
	out := []string{}
	for _, tok := range t.order {
		if t.counts[tok] != 1 {
			continue
		}
		if filter != "" && !strings.Contains(tok, filter) {
			continue
		}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// TopK counts tokens and returns the k most frequent.
func TopK(tokens []string, k int) []WordCount {
	return Count(tokens).Top(k)
}

// OnceOnly returns the tokens that occur exactly once, optionally
// restricted to those containing filter. filter must be folded the same
// way as tokens (see ingest.Folder).
func OnceOnly(tokens []string, filter string) []string {
	return Count(tokens).Once(filter)
}
