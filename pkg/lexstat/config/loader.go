package config

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/cognicore/lexstat/internal/llm"
	"github.com/cognicore/lexstat/pkg/lexstat/ingest"
	"github.com/cognicore/lexstat/pkg/lexstat/sentiment"
	"github.com/cognicore/lexstat/pkg/lexstat/stoplist"
)

// Loader constructs analysis components from a Config
type Loader struct {
	Config     Config
	Logger     *zap.Logger
	HTTPClient *http.Client
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer  *ingest.Tokenizer
	Exclusions *stoplist.Set
	Scorer     sentiment.Scorer
}

// Load reads the exclusion and lexicon files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := l.Config.Validate(); err != nil {
		return nil, err
	}

	form, err := ingest.ParseForm(l.Config.UnicodeForm)
	if err != nil {
		return nil, err
	}

	comp := &Components{}
	comp.Exclusions = LoadExclusions(l.Config.ExcludeFile, logger)
	comp.Tokenizer = ingest.NewTokenizer(comp.Exclusions, ingest.NewFolder(form))

	comp.Scorer, err = l.buildScorer(logger)
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (l *Loader) buildScorer(logger *zap.Logger) (sentiment.Scorer, error) {
	cfg := l.Config.Sentiment
	switch cfg.Backend {
	case BackendLLM:
		client := &llm.Client{
			BaseURL:    cfg.LLM.BaseURL,
			Model:      cfg.LLM.Model,
			HTTPClient: l.HTTPClient,
		}
		if cfg.LLM.APIKeyEnv != "" {
			client.APIKey = os.Getenv(cfg.LLM.APIKeyEnv)
		}
		if client.HTTPClient == nil && cfg.LLM.Timeout > 0 {
			client.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}
		}
		logger.Info("using llm polarity scorer", zap.String("base_url", cfg.LLM.BaseURL), zap.String("model", cfg.LLM.Model))
		return llm.NewPolarityScorer(client), nil
	default:
		if cfg.LexiconFile == "" {
			return sentiment.NewLexiconScorer(nil), nil
		}
		lex, err := sentiment.LoadLexicon(cfg.LexiconFile)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		logger.Debug("lexicon loaded", zap.String("path", cfg.LexiconFile), zap.Int("words", len(lex.Words)))
		return sentiment.NewLexiconScorer(lex), nil
	}
}
