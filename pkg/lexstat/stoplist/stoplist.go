package stoplist

import (
	"sort"
	"strings"
)

// Set is the exclusion list consulted by the tokenizer. Entries are
// stored lowercased; lookups expect already-normalized tokens.
// A nil *Set reads as empty; Add and Remove need a non-nil set.
type Set struct {
	stops map[string]struct{}
}

// New creates a set from the given words
func New(words []string) *Set {
	stops := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		stops[w] = struct{}{}
	}
	return &Set{stops: stops}
}

// Empty returns a set that excludes nothing.
func Empty() *Set {
	return New(nil)
}

// IsStop checks if a token is excluded. A nil set excludes nothing.
func (s *Set) IsStop(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[token]
	return ok
}

// Add adds a word to the set
func (s *Set) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	if s.stops == nil {
		s.stops = make(map[string]struct{})
	}
	s.stops[word] = struct{}{}
}

// Fold returns a copy of the set with every entry passed through fold,
// so entries compare equal to tokens produced by the same folding.
// Entries that fold to "" are dropped.
func (s *Set) Fold(fold func(string) string) *Set {
	out := &Set{stops: make(map[string]struct{}, s.Len())}
	if s == nil {
		return out
	}
	for w := range s.stops {
		if f := fold(w); f != "" {
			out.stops[f] = struct{}{}
		}
	}
	return out
}

// Remove removes a word from the set
func (s *Set) Remove(word string) {
	delete(s.stops, strings.ToLower(strings.TrimSpace(word)))
}

// Len returns the number of excluded words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stops)
}

// All returns every excluded word in ascending order.
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}
