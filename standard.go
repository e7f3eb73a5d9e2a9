package orthography

import (
	"fmt"
	"strings"
)

// Standard labels the orthographic standard of a piece of text.
type Standard uint8

const (
	Unknown   Standard = iota // no markers of either standard
	StandardA                 // DIARO, composed diacritics
	StandardB                 // Cunia, digraphs and unified ã
	Mixed                     // markers of both standards
)

func (s Standard) String() string {
	switch s {
	case StandardA:
		return "standardA"
	case StandardB:
		return "standardB"
	case Mixed:
		return "mixed"
	}
	return "unknown"
}

// ParseStandard parses a standard label. Besides the canonical labels it
// accepts the names of the conventions, "diaro" and "cunia", and the short
// forms "a" and "b". Matching is case-insensitive.
func ParseStandard(name string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standarda", "diaro", "a":
		return StandardA, nil
	case "standardb", "cunia", "b":
		return StandardB, nil
	case "mixed":
		return Mixed, nil
	case "unknown":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("%w: unknown standard %q", ErrInvalidArgument, name)
}

// Resolution is one of the Standard A glyphs the unified vowel ã stands for.
type Resolution uint8

const (
	Schwa       Resolution = iota // ă
	Circumflex                    // â
	WordInitial                   // î, categorical at the start of a word
)

// resolutionCount is the number of resolutions backed by frequency tables.
const resolutionCount = 2

// DefaultResolution is chosen when frequency data does not decide. It is the
// globally more frequent variant and a known source of residual error.
const DefaultResolution = Schwa

// Glyph returns the lower-case Standard A glyph for r.
func (r Resolution) Glyph() rune {
	switch r {
	case Circumflex:
		return 'â'
	case WordInitial:
		return 'î'
	}
	return 'ă'
}

func (r Resolution) String() string {
	switch r {
	case Circumflex:
		return "circumflex"
	case WordInitial:
		return "word-initial"
	}
	return "schwa"
}
