package lexstat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/lexstat/pkg/lexstat/analytics"
	"github.com/cognicore/lexstat/pkg/lexstat/corpus"
	"github.com/cognicore/lexstat/pkg/lexstat/ingest"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/sentiment"
)

// Mode names one analysis pathway.
type Mode string

const (
	ModeTopWords    Mode = "top-words"
	ModeListLines   Mode = "list-lines"
	ModeUniqueWords Mode = "unique-words"
	ModeNGrams      Mode = "ngrams"
	ModeContext     Mode = "context"
	ModeTimeline    Mode = "timeline"
	ModeSentiment   Mode = "sentiment"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeTopWords, ModeListLines, ModeUniqueWords, ModeNGrams, ModeContext, ModeTimeline, ModeSentiment}

// ParseMode maps a mode name to a Mode. The empty string selects top-words.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeTopWords, nil
	}
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q: %w", s, internalerr.ErrInvalidInput)
}

// Engine runs analyses over one loaded corpus
type Engine struct {
	corpus    *corpus.Corpus
	tokenizer *ingest.Tokenizer
	scorer    sentiment.Scorer
	logger    *zap.Logger
}

// Options configures an Engine
type Options struct {
	Corpus    *corpus.Corpus
	Tokenizer *ingest.Tokenizer
	Scorer    sentiment.Scorer
	Logger    *zap.Logger
}

// New creates an Engine. Missing options fall back to an empty corpus,
// a tokenizer without exclusions, the default lexicon scorer and a no-op
// logger.
func New(opts Options) *Engine {
	e := &Engine{
		corpus:    opts.Corpus,
		tokenizer: opts.Tokenizer,
		scorer:    opts.Scorer,
		logger:    opts.Logger,
	}
	if e.tokenizer == nil {
		e.tokenizer = ingest.NewTokenizer(nil, nil)
	}
	if e.corpus == nil {
		e.corpus = corpus.New(nil, e.tokenizer.Folder())
	}
	if e.scorer == nil {
		e.scorer = sentiment.NewLexiconScorer(nil)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Corpus returns the corpus the engine analyzes.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// TopWords returns the k most frequent tokens, ties in first-occurrence order.
func (e *Engine) TopWords(k int) []analytics.WordCount {
	tokens := e.tokenizer.Normalize(e.corpus.Lines())
	e.logger.Debug("counted tokens", zap.Int("tokens", len(tokens)))
	return analytics.TopK(tokens, k)
}

// ListLines returns the lines containing search, case-insensitively.
func (e *Engine) ListLines(search string) ([]corpus.Line, error) {
	return corpus.Search(e.corpus, search)
}

// UniqueWords returns the tokens that occur exactly once, optionally only
// those containing filter.
func (e *Engine) UniqueWords(filter string) []string {
	tokens := e.tokenizer.Normalize(e.corpus.Lines())
	return analytics.OnceOnly(tokens, e.tokenizer.Folder().Fold(filter))
}

// NGrams extracts n-grams per line.
func (e *Engine) NGrams(q analytics.Query) ([]analytics.NGramCount, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	q.StartWord = e.tokenizer.Folder().Fold(q.StartWord)
	return analytics.NGrams(e.tokenizer.TokenizeLines(e.corpus.Lines()), q)
}

// Bigrams is NGrams with a window of two.
func (e *Engine) Bigrams(startWord string, minCount int, order analytics.Order) ([]analytics.NGramCount, error) {
	return e.NGrams(analytics.Query{N: 2, StartWord: startWord, MinCount: minCount, Order: order})
}

// Context returns the clipped window around a 1-based line number.
func (e *Engine) Context(lineNumber, radius int) (corpus.Window, error) {
	return corpus.Context(e.corpus, lineNumber, radius)
}

// Timeline counts word per contiguous chunk of lines.
func (e *Engine) Timeline(word string, chunks int) ([]corpus.Chunk, error) {
	return corpus.Timeline(e.corpus, word, chunks)
}

// Sentiment aggregates the polarity of lines mentioning word.
func (e *Engine) Sentiment(ctx context.Context, word string) (sentiment.Summary, error) {
	return sentiment.Aggregate(ctx, e.corpus, word, e.scorer)
}

// Request selects a mode and carries its options. Only the fields of the
// selected mode are read.
type Request struct {
	Mode Mode `json:"mode"`

	Count int `json:"count,omitempty"`

	Search string `json:"search,omitempty"`
	Filter string `json:"filter,omitempty"`

	N         int             `json:"n,omitempty"`
	StartWord string          `json:"start_word,omitempty"`
	MinCount  int             `json:"min_count,omitempty"`
	Order     analytics.Order `json:"order,omitempty"`

	LineNumber int `json:"line_number,omitempty"`
	Radius     int `json:"radius,omitempty"`

	Word   string `json:"word,omitempty"`
	Chunks int    `json:"chunks,omitempty"`
}

// Result holds the records of exactly one mode; the others stay empty.
type Result struct {
	Mode        Mode                   `json:"mode"`
	TopWords    []analytics.WordCount  `json:"top_words,omitempty"`
	Lines       []corpus.Line          `json:"lines,omitempty"`
	UniqueWords []string               `json:"unique_words,omitempty"`
	NGrams      []analytics.NGramCount `json:"ngrams,omitempty"`
	Window      *corpus.Window         `json:"window,omitempty"`
	Timeline    []corpus.Chunk         `json:"timeline,omitempty"`
	Sentiment   *sentiment.Summary     `json:"sentiment,omitempty"`
}

// Len returns the number of records in the result.
func (r Result) Len() int {
	switch r.Mode {
	case ModeTopWords:
		return len(r.TopWords)
	case ModeListLines:
		return len(r.Lines)
	case ModeUniqueWords:
		return len(r.UniqueWords)
	case ModeNGrams:
		return len(r.NGrams)
	case ModeContext:
		if r.Window == nil {
			return 0
		}
		return len(r.Window.Lines)
	case ModeTimeline:
		return len(r.Timeline)
	case ModeSentiment:
		if r.Sentiment == nil {
			return 0
		}
		return r.Sentiment.Matched
	}
	return 0
}

// Run executes the mode selected by req. Usage errors wrap
// internalerr.ErrInvalidInput.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	if req.Mode == "" {
		req.Mode = ModeTopWords
	}
	e.logger.Debug("running analysis", zap.String("mode", string(req.Mode)), zap.Int("lines", e.corpus.Len()))

	res := Result{Mode: req.Mode}
	var err error
	switch req.Mode {
	case ModeTopWords:
		res.TopWords = e.TopWords(req.Count)
	case ModeListLines:
		res.Lines, err = e.ListLines(req.Search)
	case ModeUniqueWords:
		res.UniqueWords = e.UniqueWords(req.Filter)
	case ModeNGrams:
		res.NGrams, err = e.NGrams(analytics.Query{N: req.N, StartWord: req.StartWord, MinCount: req.MinCount, Order: req.Order})
	case ModeContext:
		var w corpus.Window
		w, err = e.Context(req.LineNumber, req.Radius)
		res.Window = &w
	case ModeTimeline:
		res.Timeline, err = e.Timeline(req.Word, req.Chunks)
	case ModeSentiment:
		var s sentiment.Summary
		s, err = e.Sentiment(ctx, req.Word)
		res.Sentiment = &s
	default:
		err = fmt.Errorf("unknown mode %q: %w", req.Mode, internalerr.ErrInvalidInput)
	}
	if err != nil {
		return Result{Mode: req.Mode}, fmt.Errorf("%s: %w", req.Mode, err)
	}

	e.logger.Info("analysis complete", zap.String("mode", string(req.Mode)), zap.Int("records", res.Len()))
	return res, nil
}
