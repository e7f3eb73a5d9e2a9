package orthography

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// UnifiedVowel is the Standard B central vowel, standing for ă, â and î.
const (
	UnifiedVowel      = 'ã'
	UnifiedVowelUpper = 'Ã'
)

// Composed consonant glyphs of Standard A together with their capitalized
// and all-caps digraphs. Legacy cedilla forms and the apostrophe spellings
// of the palatals are accepted as input.
var consonantGlyphs = []struct {
	glyph, digraph, capitalized, allCaps string
}{
	{"ș", "sh", "", ""}, {"Ș", "", "Sh", "SH"},
	{"ş", "sh", "", ""}, {"Ş", "", "Sh", "SH"},
	{"s\u0326", "sh", "", ""}, {"S\u0326", "", "Sh", "SH"},
	{"s\u0327", "sh", "", ""}, {"S\u0327", "", "Sh", "SH"},
	{"ț", "ts", "", ""}, {"Ț", "", "Ts", "TS"},
	{"ţ", "ts", "", ""}, {"Ţ", "", "Ts", "TS"},
	{"t\u0326", "ts", "", ""}, {"T\u0326", "", "Ts", "TS"},
	{"t\u0327", "ts", "", ""}, {"T\u0327", "", "Ts", "TS"},
	{"ľ", "lj", "", ""}, {"Ľ", "", "Lj", "LJ"},
	{"l'", "lj", "", ""}, {"L'", "", "Lj", "LJ"},
	{"l\u2019", "lj", "", ""}, {"L\u2019", "", "Lj", "LJ"},
	{"ń", "nj", "", ""}, {"Ń", "", "Nj", "NJ"},
	{"ñ", "nj", "", ""}, {"Ñ", "", "Nj", "NJ"},
	{"n'", "nj", "", ""}, {"N'", "", "Nj", "NJ"},
	{"n\u2019", "nj", "", ""}, {"N\u2019", "", "Nj", "NJ"},
	{"d\u0326", "dz", "", ""}, {"D\u0326", "", "Dz", "DZ"},
	{"ḑ", "dz", "", ""}, {"Ḑ", "", "Dz", "DZ"},
	{"ḍ", "dz", "", ""}, {"Ḍ", "", "Dz", "DZ"},
}

// unifiedConsonantPairs lists Standard A consonant → Standard B digraph,
// capital glyphs as capitalized digraphs. allCapsConsonantPairs lists the
// same glyphs in the same order with capitals as all-caps digraphs.
func unifiedConsonantPairs() []GlyphPair {
	return consonantPairs(false)
}

func allCapsConsonantPairs() []GlyphPair {
	return consonantPairs(true)
}

func consonantPairs(allCaps bool) []GlyphPair {
	pairs := make([]GlyphPair, 0, len(consonantGlyphs))
	for _, c := range consonantGlyphs {
		switch {
		case c.digraph != "":
			pairs = append(pairs, GlyphPair{From: c.glyph, To: c.digraph})
		case allCaps:
			pairs = append(pairs, GlyphPair{From: c.glyph, To: c.allCaps})
		default:
			pairs = append(pairs, GlyphPair{From: c.glyph, To: c.capitalized})
		}
	}
	return pairs
}

// standardConsonantPairs lists Standard B digraph → Standard A consonant.
var standardConsonantPairs = []GlyphPair{
	{"SH", "Ș"}, {"Sh", "Ș"}, {"sh", "ș"},
	{"TS", "Ț"}, {"Ts", "Ț"}, {"ts", "ț"},
	{"LJ", "Ľ"}, {"Lj", "Ľ"}, {"lj", "ľ"},
	{"NJ", "Ń"}, {"Nj", "Ń"}, {"nj", "ń"},
	{"DZ", "D\u0326"}, {"Dz", "D\u0326"}, {"dz", "d\u0326"},
}

// vowelPairs collapses every central vowel variant to the unified vowel.
// Decomposed spellings are listed for input which did not pass NFC.
var vowelPairs = []GlyphPair{
	{"ă", "ã"}, {"Ă", "Ã"},
	{"â", "ã"}, {"Â", "Ã"},
	{"î", "ã"}, {"Î", "Ã"},
	{"ӑ", "ã"}, {"Ӑ", "Ã"},
	{"ǎ", "ã"}, {"Ǎ", "Ã"},
	{"a\u0306", "ã"}, {"A\u0306", "Ã"},
	{"a\u0302", "ã"}, {"A\u0302", "Ã"},
	{"i\u0302", "ã"}, {"I\u0302", "Ã"},
	{"a\u0303", "ã"}, {"A\u0303", "Ã"},
}

// miscPairs maps foreign letters and stray accents to plain equivalents.
// Not invertible; used only on the way to the unified form.
var miscPairs = []GlyphPair{
	{"ŭ", "u"}, {"ū", "u"},
	{"ς", "c"},
	{"é", "e"},
	{"í", "i"}, {"ì", "i"}, {"ĭ", "i"}, {"ï", "i"},
	{"ā", "a"}, {"á", "a"}, {"à", "a"},
	{"Á", "A"}, {"À", "A"},
	{"ó", "o"},
	{"γ", "y"}, {"Γ", "Y"},
	{"θ", "th"}, {"Θ", "Th"},
	{"δ", "dh"}, {"Δ", "Dh"},
}

var (
	unifiedConsonants  = mustGlyphTable("consonants→unified", unifiedConsonantPairs()).absorbingMarks()
	allCapsConsonants  = mustGlyphTable("consonants→unified all-caps", allCapsConsonantPairs())
	standardConsonants = mustGlyphTable("consonants→standard", standardConsonantPairs)
	vowelCollapse      = mustGlyphTable("vowels→unified", vowelPairs).absorbingMarks()
	miscNormalization  = mustGlyphTable("misc", miscPairs).absorbingMarks()
)

// ToUnifiedConsonants replaces every Standard A composed consonant by its
// Standard B digraph, keeping the casing of the surrounding word.
//
// A capital consonant becomes an all-caps digraph if the next letter is
// upper-case. Without a letter following it, the preceding letter decides,
// and a consonant standing alone is taken as all-caps.
//
//	"Ași" => "Ashi", "ȘI" => "SHI", "PLAȚ" => "PLATS"
func ToUnifiedConsonants(text string) string {
	return unifiedConsonants.applyCased(text, allCapsConsonants, inAllCapsContext)
}

// inAllCapsContext decides the casing of a capital glyph at runes
// rs[start:end].
func inAllCapsContext(rs []rune, start, end int) bool {
	if end < len(rs) && unicode.IsLetter(rs[end]) {
		return unicode.IsUpper(rs[end])
	}
	for i := start - 1; i >= 0; i-- {
		if unicode.IsLetter(rs[i]) {
			return unicode.IsUpper(rs[i])
		}
		if !unicode.Is(unicode.Mn, rs[i]) {
			break
		}
	}
	return true
}

// ToStandardConsonants replaces Standard B digraphs by Standard A consonants.
//
//	"shi" => "și", "Dzua" => "D̦ua"
func ToStandardConsonants(text string) string {
	return standardConsonants.Apply(text)
}

// CollapseVowels maps every central vowel variant to ã, preserving case.
func CollapseVowels(text string) string {
	return vowelCollapse.Apply(text)
}

// NormalizeMisc replaces foreign letters and accents with plain equivalents.
func NormalizeMisc(text string) string {
	return miscNormalization.Apply(text)
}

// toUnified runs the full pipeline towards Standard B:
// NFC composition, consonants, then vowels, then miscellaneous characters.
func toUnified(text string) string {
	return NormalizeMisc(CollapseVowels(ToUnifiedConsonants(norm.NFC.String(text))))
}

// isUnifiedVowel is true for ã and Ã.
func isUnifiedVowel(r rune) bool {
	return r == UnifiedVowel || r == UnifiedVowelUpper
}

// bookPairs maps the legacy "book" spelling of older printed texts to
// Standard A. Vowels are left alone.
var bookPairs = []GlyphPair{
	{"dz", "d\u0326"}, {"Dz", "D\u0326"}, {"DZ", "D\u0326"},
	{"l'", "ľ"}, {"l\u2019", "ľ"}, {"L'", "Ľ"}, {"L\u2019", "Ľ"},
	{"ñ", "ń"}, {"Ñ", "Ń"},
	{"ş", "ș"}, {"Ş", "Ș"},
	{"ţ", "ț"}, {"Ţ", "Ț"},
	{"γ", "y"}, {"Γ", "Y"},
}

var bookToStandard = mustGlyphTable("book→standardA", bookPairs)

// BookToStandardA converts the legacy book spelling to Standard A.
//
//	"Dzua l'a ñel" => "D̦ua ľa ńel"
func BookToStandardA(text string) string {
	return bookToStandard.Apply(text)
}
