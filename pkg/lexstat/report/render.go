package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/lexstat/pkg/lexstat"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Format selects how a report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("output format %q must be text or json: %w", s, internalerr.ErrInvalidInput)
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, r)
	}
	return WriteText(w, r)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable rendering of r.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Lines in file: %d\n", r.Lines)

	req, res := r.Request, r.Result
	switch r.Mode {
	case lexstat.ModeTopWords:
		fmt.Fprintf(&b, "Top %d words:\n", req.Count)
		for _, wc := range res.TopWords {
			fmt.Fprintf(&b, "  %s: %d\n", wc.Token, wc.Count)
		}

	case lexstat.ModeListLines:
		if len(res.Lines) == 0 {
			fmt.Fprintf(&b, "No lines contain %q.\n", req.Search)
			break
		}
		fmt.Fprintf(&b, "Lines containing %q:\n", req.Search)
		for _, l := range res.Lines {
			fmt.Fprintf(&b, "  %d: %s\n", l.Number, l.Text)
		}

	case lexstat.ModeUniqueWords:
		if len(res.UniqueWords) == 0 {
			b.WriteString("No words used only once.\n")
			break
		}
		b.WriteString("Words used only once:\n")
		for _, word := range res.UniqueWords {
			fmt.Fprintf(&b, "  %s\n", word)
		}

	case lexstat.ModeNGrams:
		if len(res.NGrams) == 0 {
			fmt.Fprintf(&b, "No %d-grams start with %q.\n", req.N, req.StartWord)
			break
		}
		fmt.Fprintf(&b, "%d-grams starting with %q:\n", req.N, req.StartWord)
		for _, ng := range res.NGrams {
			fmt.Fprintf(&b, "  %s: %d\n", ng.NGram, ng.Count)
		}

	case lexstat.ModeContext:
		if res.Window == nil || len(res.Window.Lines) == 0 {
			fmt.Fprintf(&b, "Line %d is outside the file.\n", req.LineNumber)
			break
		}
		fmt.Fprintf(&b, "Context for line %d (radius %d):\n", res.Window.Target, res.Window.Radius)
		for _, l := range res.Window.Lines {
			marker := " "
			if l.IsTarget {
				marker = ">"
			}
			fmt.Fprintf(&b, "%s %d: %s\n", marker, l.Number, l.Text)
		}

	case lexstat.ModeTimeline:
		fmt.Fprintf(&b, "Timeline for %q (%d chunks):\n", req.Word, len(res.Timeline))
		for _, ch := range res.Timeline {
			if ch.Len() == 0 {
				fmt.Fprintf(&b, "  chunk %d (no lines): 0\n", ch.Index+1)
				continue
			}
			fmt.Fprintf(&b, "  lines %d-%d: %d\n", ch.StartLine(), ch.EndLine(), ch.Occurrences)
		}

	case lexstat.ModeSentiment:
		s := res.Sentiment
		if s == nil || s.Matched == 0 {
			fmt.Fprintf(&b, "No lines mention %q.\n", req.Word)
			break
		}
		fmt.Fprintf(&b, "Sentiment for %q: %s (average %.3f over %d lines)\n", s.Word, s.Label, s.Average, s.Matched)
		if s.MostPositive != nil {
			fmt.Fprintf(&b, "  most positive: line %d (%.3f): %s\n", s.MostPositive.Number, s.MostPositive.Score, s.MostPositive.Text)
		}
		if s.MostNegative != nil {
			fmt.Fprintf(&b, "  most negative: line %d (%.3f): %s\n", s.MostNegative.Number, s.MostNegative.Score, s.MostNegative.Text)
		}

	default:
		return fmt.Errorf("render mode %q: %w", r.Mode, internalerr.ErrInvalidInput)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
