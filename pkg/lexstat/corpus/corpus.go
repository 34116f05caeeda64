package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Folder maps text to the case-folded form used for substring matching.
type Folder interface {
	Fold(s string) string
}

type lowerFolder struct{}

func (lowerFolder) Fold(s string) string { return strings.ToLower(s) }

// Corpus is the ordered, immutable set of raw lines read from one file.
// Index i in the accessors is 0-based; user-facing line numbers are i+1.
type Corpus struct {
	path   string
	lines  []string
	folded []string
	folder Folder
}

// New builds a corpus from lines already in memory. The folded form of
// each line is computed once with folder (strings.ToLower when nil).
func New(lines []string, folder Folder) *Corpus {
	if folder == nil {
		folder = lowerFolder{}
	}
	folded := make([]string, len(lines))
	for i, line := range lines {
		folded[i] = folder.Fold(line)
	}
	return &Corpus{lines: lines, folded: folded, folder: folder}
}

// Load reads the whole file at path into memory.
func Load(path string, folder Folder) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w: %w", path, internalerr.ErrCorpusUnavailable, err)
	}
	c := New(SplitLines(string(data)), folder)
	c.path = path
	return c, nil
}

// SplitLines splits text into lines. A trailing newline does not start an
// extra line, "\r\n" endings are accepted, and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Path returns the file the corpus was loaded from, or "" for in-memory corpora.
func (c *Corpus) Path() string {
	return c.path
}

// Len returns the number of lines.
func (c *Corpus) Len() int {
	return len(c.lines)
}

// Line returns the raw text at index i.
func (c *Corpus) Line(i int) string {
	return c.lines[i]
}

// Folded returns the case-folded text at index i.
func (c *Corpus) Folded(i int) string {
	return c.folded[i]
}

// Lines returns the raw lines. Callers must not modify the slice.
func (c *Corpus) Lines() []string {
	return c.lines
}

// Fold applies the corpus folding to s, so needles match folded lines.
func (c *Corpus) Fold(s string) string {
	return c.folder.Fold(s)
}
