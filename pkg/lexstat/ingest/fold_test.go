package ingest

import (
	"errors"
	"testing"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		in   string
		want Form
	}{
		{"", FormNone},
		{"none", FormNone},
		{"NFC", FormNFC},
		{" nfkc ", FormNFKC},
	}
	for _, tt := range tests {
		got, err := ParseForm(tt.in)
		if err != nil {
			t.Fatalf("ParseForm(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseForm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseForm("nfd"); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("unknown form should be a config error, got %v", err)
	}
}

func TestFoldUnicodeLowercase(t *testing.T) {
	f := NewFolder(FormNone)

	if got := f.Fold("ÉCOLE Straße"); got != "école straße" {
		t.Errorf("Fold = %q", got)
	}
	if got := f.Fold("\u0130"); got != "i\u0307" {
		t.Errorf("Fold(İ) = %q, want full lowercase mapping", got)
	}
}

func TestFoldNormalizationForms(t *testing.T) {
	composed := "café"
	decomposed := "café"

	none := NewFolder(FormNone)
	if none.Fold(composed) == none.Fold(decomposed) {
		t.Error("without normalization composed and decomposed forms should differ")
	}

	nfc := NewFolder(FormNFC)
	if nfc.Fold(composed) != nfc.Fold(decomposed) {
		t.Error("NFC should unify composed and decomposed forms")
	}

	nfkc := NewFolder(FormNFKC)
	if got := nfkc.Fold("\ufb01le"); got != "file" {
		t.Errorf("NFKC should expand ligatures, got %q", got)
	}
}

func TestTokenizerUsesFolder(t *testing.T) {
	tokenizer := NewTokenizer(nil, NewFolder(FormNFC))

	tokens := tokenizer.Tokenize("Café café")
	if len(tokens) != 2 || tokens[0] != tokens[1] {
		t.Errorf("NFC tokenizer should produce identical tokens, got %q", tokens)
	}
	if tokenizer.Folder().Form() != FormNFC {
		t.Errorf("Folder().Form() = %q", tokenizer.Folder().Form())
	}
}
