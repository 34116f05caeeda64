package corpus

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

func TestTimelineRemainderInLastChunk(t *testing.T) {
	c := numbered(10)

	chunks, err := Timeline(c, "x", 3)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}

	want := [][2]int{{1, 3}, {4, 6}, {7, 10}}
	if len(chunks) != len(want) {
		t.Fatalf("Expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, ch := range chunks {
		if ch.StartLine() != want[i][0] || ch.EndLine() != want[i][1] {
			t.Errorf("chunk %d = lines %d-%d, want %d-%d", i, ch.StartLine(), ch.EndLine(), want[i][0], want[i][1])
		}
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
	}
	if chunks[0].Len() != 3 || chunks[2].Len() != 4 {
		t.Errorf("unexpected chunk sizes %d, %d", chunks[0].Len(), chunks[2].Len())
	}
}

func TestTimelineCounts(t *testing.T) {
	c := New([]string{
		"Signal signal",
		"no match",
		"SIGNAL",
		"signals and signal",
	}, nil)

	chunks, err := Timeline(c, "Signal", 2)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if chunks[0].Occurrences != 2 {
		t.Errorf("chunk 0 occurrences = %d, want 2", chunks[0].Occurrences)
	}
	if chunks[1].Occurrences != 3 {
		t.Errorf("chunk 1 occurrences = %d, want 3", chunks[1].Occurrences)
	}
}

func TestTimelineNonOverlappingMatches(t *testing.T) {
	c := New([]string{"aaaa"}, nil)

	chunks, err := Timeline(c, "aa", 1)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if chunks[0].Occurrences != 2 {
		t.Errorf("occurrences = %d, want 2 non-overlapping matches", chunks[0].Occurrences)
	}
}

func TestTimelinePartitionProperties(t *testing.T) {
	lines := []string{
		"the tone rises", "tone", "", "Tone tone TONE", "nothing",
		"undertone", "t o n e", "tones", "x", "tone.", "final tone",
	}
	c := New(lines, nil)

	global := 0
	for _, l := range lines {
		global += strings.Count(strings.ToLower(l), "tone")
	}

	for chunkCount := 1; chunkCount <= 15; chunkCount++ {
		chunks, err := Timeline(c, "tone", chunkCount)
		if err != nil {
			t.Fatalf("Timeline(%d): %v", chunkCount, err)
		}
		if len(chunks) != chunkCount {
			t.Fatalf("Timeline(%d) returned %d chunks", chunkCount, len(chunks))
		}

		size := len(lines) / chunkCount
		sumLines, sumOcc := 0, 0
		for i, ch := range chunks {
			sumLines += ch.Len()
			sumOcc += ch.Occurrences
			if i < len(chunks)-1 && ch.Len() != size {
				t.Errorf("Timeline(%d) chunk %d has %d lines, want %d", chunkCount, i, ch.Len(), size)
			}
			if i > 0 && ch.Start != chunks[i-1].End {
				t.Errorf("Timeline(%d) chunk %d is not contiguous", chunkCount, i)
			}
		}
		if sumLines != len(lines) {
			t.Errorf("Timeline(%d) covers %d lines, want %d", chunkCount, sumLines, len(lines))
		}
		if sumOcc != global {
			t.Errorf("Timeline(%d) counts %d occurrences, want %d", chunkCount, sumOcc, global)
		}
	}
}

func TestTimelineMoreChunksThanLines(t *testing.T) {
	c := numbered(2)

	chunks, err := Timeline(c, "line", 4)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	for i := 0; i < 3; i++ {
		if chunks[i].Len() != 0 || chunks[i].Occurrences != 0 {
			t.Errorf("chunk %d should be empty, got %+v", i, chunks[i])
		}
	}
	if chunks[3].Len() != 2 || chunks[3].Occurrences != 2 {
		t.Errorf("last chunk should hold every line, got %+v", chunks[3])
	}
}

func TestTimelineEmptyCorpus(t *testing.T) {
	chunks, err := Timeline(New(nil, nil), "x", 4)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	for _, ch := range chunks {
		if ch.Len() != 0 || ch.Occurrences != 0 {
			t.Errorf("empty corpus chunk should be empty, got %+v", ch)
		}
	}
}

func TestTimelineUsageErrors(t *testing.T) {
	c := numbered(4)

	for _, n := range []int{0, -1} {
		if _, err := Timeline(c, "x", n); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("Timeline chunks=%d should be a usage error, got %v", n, err)
		}
	}
	if _, err := Timeline(c, "", 2); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty word should be a usage error, got %v", err)
	}
}

func TestTimelineChunkCountLimit(t *testing.T) {
	c := numbered(2)

	for _, n := range []int{MaxChunks + 1, 1 << 40, 1 << 62, math.MaxInt} {
		if _, err := Timeline(c, "line", n); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("Timeline chunks=%d should be a usage error, got %v", n, err)
		}
	}

	chunks, err := Timeline(c, "line", MaxChunks)
	if err != nil {
		t.Fatalf("Timeline(MaxChunks): %v", err)
	}
	if len(chunks) != MaxChunks {
		t.Fatalf("expected %d chunks, got %d", MaxChunks, len(chunks))
	}
	if last := chunks[len(chunks)-1]; last.Len() != 2 || last.Occurrences != 2 {
		t.Errorf("last chunk should hold every line, got %+v", last)
	}
}

func TestTimelineLongCorpusAllowsChunkPerLine(t *testing.T) {
	lines := make([]string, MaxChunks+3)
	for i := range lines {
		lines[i] = "x"
	}
	c := New(lines, nil)

	chunks, err := Timeline(c, "x", len(lines))
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	for _, ch := range chunks {
		if ch.Len() != 1 || ch.Occurrences != 1 {
			t.Fatalf("chunk %d should hold one line, got %+v", ch.Index, ch)
		}
	}
	if _, err := Timeline(c, "x", len(lines)+1); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("more chunks than lines beyond MaxChunks should be a usage error, got %v", err)
	}
}
