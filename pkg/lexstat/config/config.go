package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexstat/pkg/lexstat/analytics"
	"github.com/cognicore/lexstat/pkg/lexstat/ingest"
	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// DefaultPath is the config file read when none is given explicitly.
const DefaultPath = "lexstat.yaml"

// Config represents the lexstat.yaml configuration
type Config struct {
	Input       string    `yaml:"input"`
	ExcludeFile string    `yaml:"exclude_file"`
	UnicodeForm string    `yaml:"unicode_form"`
	Defaults    Defaults  `yaml:"defaults"`
	Sentiment   Sentiment `yaml:"sentiment"`
	Log         Log       `yaml:"log"`
}

// Defaults holds per-mode option defaults
type Defaults struct {
	TopCount int    `yaml:"top_count"`
	MinCount int    `yaml:"min_count"`
	Sort     string `yaml:"sort"`
	Radius   int    `yaml:"radius"`
	Chunks   int    `yaml:"chunks"`
}

// Sentiment selects the polarity backend
type Sentiment struct {
	Backend     string `yaml:"backend"`
	LexiconFile string `yaml:"lexicon_file"`
	LLM         LLM    `yaml:"llm"`
}

// LLM configures the OpenAI-compatible polarity backend
type LLM struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Log configures the zap logger
type Log struct {
	Level string `yaml:"level"`
}

// Sentiment backends
const (
	BackendLexicon = "lexicon"
	BackendLLM     = "llm"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:       "input.log",
		ExcludeFile: "exclude_words.json",
		UnicodeForm: string(ingest.FormNone),
		Defaults: Defaults{
			TopCount: 20,
			MinCount: 1,
			Sort:     string(analytics.Desc),
			Radius:   3,
			Chunks:   4,
		},
		Sentiment: Sentiment{
			Backend: BackendLexicon,
			LLM: LLM{
				APIKeyEnv: "LEXSTAT_LLM_API_KEY",
				Timeout:   30 * time.Second,
			},
		},
		Log: Log{Level: "warn"},
	}
}

// Load reads a YAML config file on top of Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects values no mode could run with.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Input) == "" {
		problems = append(problems, "input must not be empty")
	}
	if _, err := ingest.ParseForm(c.UnicodeForm); err != nil {
		problems = append(problems, fmt.Sprintf("unknown unicode_form %q", c.UnicodeForm))
	}
	if c.Defaults.TopCount <= 0 {
		problems = append(problems, "defaults.top_count must be positive")
	}
	if c.Defaults.MinCount <= 0 {
		problems = append(problems, "defaults.min_count must be positive")
	}
	if _, err := analytics.ParseOrder(c.Defaults.Sort); err != nil {
		problems = append(problems, fmt.Sprintf("defaults.sort %q must be asc or desc", c.Defaults.Sort))
	}
	if c.Defaults.Radius < 0 {
		problems = append(problems, "defaults.radius must not be negative")
	}
	if c.Defaults.Chunks <= 0 {
		problems = append(problems, "defaults.chunks must be positive")
	}
	switch c.Sentiment.Backend {
	case "", BackendLexicon:
	case BackendLLM:
		if c.Sentiment.LLM.BaseURL == "" || c.Sentiment.LLM.Model == "" {
			problems = append(problems, "sentiment.llm needs base_url and model")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown sentiment.backend %q", c.Sentiment.Backend))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), internalerr.ErrInvalidConfig)
	}
	return nil
}
