package corpus

import (
	"errors"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

func TestSearch(t *testing.T) {
	c := New([]string{"The Signal", "nothing here", "a signal again", "SIGNALS"}, nil)

	got, err := Search(c, "Signal")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := []Line{
		{Number: 1, Text: "The Signal"},
		{Number: 3, Text: "a signal again"},
		{Number: 4, Text: "SIGNALS"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d matches, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	c := New([]string{"alpha", "beta"}, nil)

	got, err := Search(c, "gamma")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("no match should be an explicit empty result, got %v", got)
	}
}

func TestSearchEmptyNeedle(t *testing.T) {
	c := New([]string{"alpha"}, nil)

	if _, err := Search(c, ""); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty needle should be a usage error, got %v", err)
	}
}
