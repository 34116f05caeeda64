package ingest

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

// Form selects the Unicode normalization applied before case folding.
type Form string

const (
	FormNone Form = "none"
	FormNFC  Form = "nfc"
	FormNFKC Form = "nfkc"
)

// ParseForm maps a configuration value to a Form. The empty string means FormNone.
func ParseForm(s string) (Form, error) {
	switch Form(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormNone:
		return FormNone, nil
	case FormNFC:
		return FormNFC, nil
	case FormNFKC:
		return FormNFKC, nil
	default:
		return "", fmt.Errorf("unicode form %q: %w", s, internalerr.ErrInvalidConfig)
	}
}

// Folder lowercases text with full Unicode case mapping
// (e.g. "İ" → "i̇"), optionally normalizing it first.
// A Folder is not safe for concurrent use.
type Folder struct {
	form  Form
	caser cases.Caser
}

// NewFolder creates a folder for the given normalization form
func NewFolder(form Form) *Folder {
	return &Folder{
		form:  form,
		caser: cases.Lower(language.Und),
	}
}

// Form reports the configured normalization form.
func (f *Folder) Form() Form {
	return f.form
}

// Fold returns the normalized, lowercased form of s.
func (f *Folder) Fold(s string) string {
	switch f.form {
	case FormNFC:
		s = norm.NFC.String(s)
	case FormNFKC:
		s = norm.NFKC.String(s)
	}
	return f.caser.String(s)
}
