package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexstat/pkg/lexstat"
)

// Report wraps one analysis result with the facts needed to trace it.
type Report struct {
	ID          string          `json:"id"`
	Mode        lexstat.Mode    `json:"mode"`
	Input       string          `json:"input"`
	Lines       int             `json:"lines"`
	GeneratedAt time.Time       `json:"generated_at"`
	Request     lexstat.Request `json:"request"`
	Result      lexstat.Result  `json:"result"`
}

// Builder stamps reports with monotonic ULIDs
type Builder struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Build creates a report for res, produced by req over a corpus of lines
// read from input.
func (b *Builder) Build(input string, lines int, req lexstat.Request, res lexstat.Result) Report {
	now := b.now().UTC()
	mode := res.Mode
	if mode == "" {
		mode = req.Mode
	}
	return Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		Mode:        mode,
		Input:       input,
		Lines:       lines,
		GeneratedAt: now,
		Request:     req,
		Result:      res,
	}
}
