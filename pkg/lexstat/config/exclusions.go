package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/stoplist"
)

// Exclusions represents the exclusion file: {"exclude": ["the", ...]}
type Exclusions struct {
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// ReadExclusions parses an exclusion file. JSON documents are decoded as
// JSON; anything else is decoded as YAML.
func ReadExclusions(path string) (*Exclusions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ex Exclusions
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &ex)
	} else {
		err = yaml.Unmarshal(data, &ex)
	}
	if err != nil {
		return nil, fmt.Errorf("parse exclusions %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
	}
	return &ex, nil
}

// LoadExclusions returns the exclusion set at path. Any failure (missing
// file, malformed content, missing field) yields an empty set; the cause
// is only logged at debug level.
func LoadExclusions(path string, logger *zap.Logger) *stoplist.Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		return stoplist.Empty()
	}

	ex, err := ReadExclusions(path)
	if err != nil {
		logger.Debug("exclusion list unavailable, using empty set", zap.String("path", path), zap.Error(err))
		return stoplist.Empty()
	}

	set := stoplist.New(ex.Exclude)
	logger.Debug("exclusion list loaded", zap.String("path", path), zap.Int("words", set.Len()))
	return set
}
