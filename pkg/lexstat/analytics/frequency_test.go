package analytics

import (
	"slices"
	"sort"
	"testing"
)

func tokensOf(lines ...[]string) []string {
	var out []string
	for _, l := range lines {
		out = append(out, l...)
	}
	return out
}

func TestTopKFirstOccurrenceTieBreak(t *testing.T) {
	// "the cat sat", "the cat ran", "a dog sat"
	tokens := []string{"the", "cat", "sat", "the", "cat", "ran", "a", "dog", "sat"}

	got := TopK(tokens, 2)
	want := []WordCount{{"the", 2}, {"cat", 2}}
	if !slices.Equal(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}

	got = TopK(tokens, 4)
	want = []WordCount{{"the", 2}, {"cat", 2}, {"sat", 2}, {"ran", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("TopK(4) = %v, want %v", got, want)
	}
}

func TestTopKLaterTokenOvertakes(t *testing.T) {
	tokens := []string{"a", "b", "b", "c", "c", "c"}

	got := TopK(tokens, 3)
	want := []WordCount{{"c", 3}, {"b", 2}, {"a", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}
}

func TestTopKBounds(t *testing.T) {
	tokens := []string{"x", "y", "x", "z", "y", "x"}

	for _, k := range []int{0, -3} {
		if got := TopK(tokens, k); len(got) != 0 {
			t.Errorf("TopK(%d) = %v, want empty", k, got)
		}
	}

	all := TopK(tokens, 100)
	if len(all) != 3 {
		t.Fatalf("TopK beyond distinct count should return all 3 tokens, got %v", all)
	}
	sum := 0
	for _, wc := range all {
		sum += wc.Count
	}
	if sum != len(tokens) {
		t.Errorf("counts sum to %d, want %d", sum, len(tokens))
	}

	if got := TopK(nil, 5); len(got) != 0 {
		t.Errorf("TopK on no tokens = %v", got)
	}
}

func TestTableSumInvariant(t *testing.T) {
	inputs := [][]string{
		nil,
		{"a"},
		{"a", "a", "a"},
		tokensOf([]string{"the", "divine", "signal"}, []string{"the", "sacred", "tone", "the"}),
	}

	for _, tokens := range inputs {
		table := Count(tokens)
		sum := 0
		for _, e := range table.Entries() {
			sum += e.Count
		}
		if sum != len(tokens) || table.Total() != len(tokens) {
			t.Errorf("sum %d / total %d, want %d for %v", sum, table.Total(), len(tokens), tokens)
		}
	}
}

func TestTableEntriesOrder(t *testing.T) {
	table := Count([]string{"b", "a", "b", "c"})

	got := table.Entries()
	want := []WordCount{{"b", 2}, {"a", 1}, {"c", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Entries = %v, want %v", got, want)
	}
	if table.Distinct() != 3 || table.Get("b") != 2 || table.Get("zzz") != 0 {
		t.Errorf("unexpected table accessors")
	}
}

func TestOnceOnly(t *testing.T) {
	// "hello world", "hello there", "goodbye world"
	tokens := []string{"hello", "world", "hello", "there", "goodbye", "world"}

	got := OnceOnly(tokens, "")
	want := []string{"goodbye", "there"}
	if !slices.Equal(got, want) {
		t.Errorf("OnceOnly = %v, want %v", got, want)
	}
}

func TestOnceOnlyFilter(t *testing.T) {
	tokens := []string{"pathologize", "theological", "holy", "pathologizes", "olo", "olo", "tone"}

	got := OnceOnly(tokens, "olo")
	want := []string{"pathologize", "pathologizes", "theological"}
	if !slices.Equal(got, want) {
		t.Errorf("OnceOnly(olo) = %v, want %v", got, want)
	}

	if got := OnceOnly(tokens, "zzz"); got == nil || len(got) != 0 {
		t.Errorf("no match should be an explicit empty result, got %v", got)
	}
}

func TestOnceOnlyProperties(t *testing.T) {
	tokens := []string{"d", "c", "b", "a", "c", "e", "a", "f"}
	table := Count(tokens)

	got := table.Once("")
	if !sort.StringsAreSorted(got) {
		t.Errorf("Once result not sorted: %v", got)
	}
	for _, tok := range got {
		if table.Get(tok) != 1 {
			t.Errorf("Once returned %q with count %d", tok, table.Get(tok))
		}
	}
	if len(got) != 4 {
		t.Errorf("expected b, d, e, f; got %v", got)
	}
}
