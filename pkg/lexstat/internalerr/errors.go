package internalerr

import "errors"

// Sentinel errors for common cases
var (
	// ErrInvalidInput marks usage errors: bad mode arguments, missing
	// required options, out-of-domain numbers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusUnavailable marks a missing or unreadable input file.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	ErrInvalidConfig = errors.New("invalid configuration")
	ErrScorer        = errors.New("polarity scorer failed")
)
