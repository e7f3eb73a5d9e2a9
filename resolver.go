package orthography

import (
	"unicode"
)

// Context windows reach this many runes to each side of the vowel.
const (
	contextBefore = 2
	contextAfter  = 2
)

// VowelResolver decides which Standard A glyph an occurrence of the unified
// vowel ã stands for.
//
// Rules, first applicable wins:
//
//  0. Words listed in an exception lexicon take the listed vowels.
//  1. At the start of a word, ã is always î.
//  2. Otherwise the context window around the vowel is looked up in the
//     frequency model; the resolution with the strictly greater count wins.
//  3. On a tie, including unseen contexts, DefaultResolution is chosen.
//
// A VowelResolver never fails. It holds no mutable state.
type VowelResolver struct {
	freq       FrequencyCounter
	exceptions *Exceptions
}

// NewVowelResolver creates a resolver backed by freq. If freq is nil, an
// empty model is used and only rules 1 and 3 apply.
func NewVowelResolver(freq FrequencyCounter) *VowelResolver {
	if freq == nil {
		freq = EmptyFrequencyModel()
	}
	return &VowelResolver{freq: freq}
}

// WithExceptions returns a copy of vr which consults ex before all other
// rules. ex may be nil.
func (vr *VowelResolver) WithExceptions(ex *Exceptions) *VowelResolver {
	return &VowelResolver{freq: vr.freq, exceptions: ex}
}

// Resolve returns the resolution for the vowel at rune index at of word.
// word is expected to be in unified spelling; its case does not matter.
func (vr *VowelResolver) Resolve(word []rune, at int) Resolution {
	if res, found := vr.exceptions.Lookup(word, at); found {
		return res
	}
	if at <= 0 {
		return WordInitial
	}
	ctx := ContextWindow(word, at)
	circumflex := vr.freq.CountFor(Circumflex, ctx)
	schwa := vr.freq.CountFor(Schwa, ctx)
	tracer().Debugf("resolve %q at %d: context=%q circumflex=%d schwa=%d", string(word), at, ctx, circumflex, schwa)
	switch {
	case circumflex > schwa:
		return Circumflex
	case schwa > circumflex:
		return Schwa
	}
	return DefaultResolution
}

// Glyph resolves the vowel at index at of word and returns the Standard A
// glyph, upper-cased if upper is set.
func (vr *VowelResolver) Glyph(word []rune, at int, upper bool) rune {
	g := vr.Resolve(word, at).Glyph()
	if upper {
		return unicode.ToUpper(g)
	}
	return g
}

// ContextWindow returns the lower-cased runes of word from at-2 up to and
// including at+2, clipped at the word boundaries.
//
//	ContextWindow([]rune("armãnã"), 3) => "rmãnã"
func ContextWindow(word []rune, at int) string {
	if at < 0 || at >= len(word) {
		return ""
	}
	start := max(0, at-contextBefore)
	end := min(len(word), at+contextAfter+1)
	window := make([]rune, end-start)
	for i, r := range word[start:end] {
		window[i] = unicode.ToLower(r)
	}
	return string(window)
}
