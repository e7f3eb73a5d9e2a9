package orthography

import (
	"fmt"
	"strings"
	"unicode"
)

// Converter converts whole texts between Standard A and Standard B.
// It is safe for concurrent use.
type Converter struct {
	resolver *VowelResolver
}

// NewConverter creates a converter which resolves the unified vowel with vr.
// If vr is nil, a resolver without frequency data is used.
func NewConverter(vr *VowelResolver) *Converter {
	if vr == nil {
		vr = NewVowelResolver(nil)
	}
	return &Converter{resolver: vr}
}

// ToUnified converts consonants, then collapses central vowels, then
// normalizes miscellaneous characters. It does not need frequency data and
// is idempotent.
func (c *Converter) ToUnified(text string) string {
	return toUnified(text)
}

// ToStandardB is the same as ToUnified, since Standard B already uses the
// unified vowel.
func (c *Converter) ToStandardB(text string) string {
	return toUnified(text)
}

// ToStandardA converts text to Standard A. The text is brought into unified
// form first, then every unified vowel inside a word is resolved, then
// digraphs are turned into composed consonants. A word is a maximal run of
// letters and apostrophes; everything else is copied unchanged.
func (c *Converter) ToStandardA(text string) string {
	unified := []rune(toUnified(text))
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(unified); {
		if !isWordRune(unified[i]) {
			b.WriteRune(unified[i])
			i++
			continue
		}
		j := i
		for j < len(unified) && isWordRune(unified[j]) {
			j++
		}
		c.writeResolvedWord(&b, unified[i:j])
		i = j
	}
	return ToStandardConsonants(b.String())
}

// writeResolvedWord writes word to b with every unified vowel resolved.
func (c *Converter) writeResolvedWord(b *strings.Builder, word []rune) {
	var lower []rune
	for i, r := range word {
		if !isUnifiedVowel(r) {
			b.WriteRune(r)
			continue
		}
		if lower == nil {
			lower = make([]rune, len(word))
			for k, x := range word {
				lower[k] = unicode.ToLower(x)
			}
		}
		b.WriteRune(c.resolver.Glyph(lower, i, r == UnifiedVowelUpper))
	}
}

// Convert converts text to target, which must be StandardA or StandardB.
// Other targets yield an error wrapping ErrInvalidArgument.
func (c *Converter) Convert(text string, target Standard) (string, error) {
	switch target {
	case StandardA:
		return c.ToStandardA(text), nil
	case StandardB:
		return c.ToStandardB(text), nil
	}
	return "", fmt.Errorf("%w: cannot convert to %s", ErrInvalidArgument, target)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}
