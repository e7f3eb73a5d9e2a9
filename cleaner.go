package orthography

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Variant selects the language variant a text is cleaned for.
type Variant uint8

const (
	VariantAromanian Variant = iota // "rup": consonants and vowels are unified
	VariantRomanian                 // "ron": cedilla forms are replaced by comma forms
)

func (v Variant) String() string {
	if v == VariantRomanian {
		return "ron"
	}
	return "rup"
}

// ParseVariant parses a language code, "rup" or "ron".
func ParseVariant(code string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "rup", "":
		return VariantAromanian, nil
	case "ron":
		return VariantRomanian, nil
	}
	return VariantAromanian, fmt.Errorf("%w: unknown language variant %q", ErrInvalidArgument, code)
}

var cedillaPairs = []GlyphPair{
	{"ş", "ș"}, {"Ş", "Ș"},
	{"ţ", "ț"}, {"Ţ", "Ț"},
}

var punctuationPairs = []GlyphPair{
	{"—", "-"},
	{"…", "..."},
	{"„", "\""}, {"“", "\""}, {"”", "\""},
	{"‘", "'"}, {"’", "'"},
}

var (
	cedillaToComma = mustGlyphTable("cedilla→comma", cedillaPairs)
	punctuation    = mustGlyphTable("punctuation", punctuationPairs)
)

// isStray is true for control characters other than white space and for
// markup remnants.
func isStray(r rune) bool {
	switch r {
	case '*', '<', '>':
		return true
	}
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

// Cleaner prepares raw text for classification and conversion.
type Cleaner struct {
	variant Variant
}

// NewCleaner creates a cleaner for language variant v.
func NewCleaner(v Variant) *Cleaner {
	return &Cleaner{variant: v}
}

// Clean normalizes text in this order:
//
//  1. Unicode NFC composition
//  2. removal of control characters and markup remnants (* < >)
//  3. white space runs are collapsed to a single blank, ends are trimmed
//  4. an old-orthography î between two letters becomes â
//  5. Aromanian text is unified, Romanian cedilla ş ţ become ș ț
//  6. dashes, ellipses and typographic quotes are replaced by ASCII
func (c *Cleaner) Clean(text string) string {
	// transformer chains keep state, so every call gets its own
	chain := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(isStray)))
	s, _, err := transform.String(chain, text)
	if err != nil {
		tracer().Errorf("cleaner: %v", err)
		s = norm.NFC.String(text)
	}
	s = strings.Join(strings.Fields(s), " ")
	s = modernizeInnerI(s)
	if c.variant == VariantRomanian {
		s = cedillaToComma.Apply(s)
	} else {
		s = toUnified(s)
	}
	return punctuation.Apply(s)
}

// modernizeInnerI replaces î by â if letters are immediately before and
// after it.
func modernizeInnerI(s string) string {
	if !strings.ContainsRune(s, 'î') {
		return s
	}
	rs := []rune(s)
	for i := 1; i < len(rs)-1; i++ {
		if rs[i] == 'î' && unicode.IsLetter(rs[i-1]) && unicode.IsLetter(rs[i+1]) {
			rs[i] = 'â'
		}
	}
	return string(rs)
}
