package orthography

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// GlyphPair is one substitution of a glyph table.
type GlyphPair struct {
	From string // literal, case-sensitive
	To   string // may be empty to delete From
}

// GlyphTable is a compiled, ordered list of glyph substitutions.
//
// Apply scans text once from left to right. At every position the longest
// From matching there is replaced; if none matches, the character is copied.
// There is no backtracking, and replacement output is never re-scanned.
// When two pairs share the same From, the first one wins.
//
// A GlyphTable is read-only after construction.
type GlyphTable struct {
	Identifier  string
	trie        keyTrie
	targets     []string
	stateTarget []int32 // by trie state: index into targets + 1, 0 = none
	absorbMarks bool    // drop nonspacing marks directly after a match
}

// NewGlyphTable compiles pairs into a glyph table.
// Empty or non-BMP From strings are rejected.
func NewGlyphTable(name string, pairs []GlyphPair) (*GlyphTable, error) {
	trie := newDATBackend()
	table := &GlyphTable{
		Identifier: fmt.Sprintf("glyphs: %s", name),
		trie:       trie,
		targets:    make([]string, 0, len(pairs)),
	}
	type pendingTarget struct {
		pos    int
		target int
	}
	pending := make([]pendingTarget, 0, len(pairs))
	seen := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		if p.From == "" {
			return nil, fmt.Errorf("glyph table %s: empty source glyph", name)
		}
		key, ok := trie.EncodeKey(p.From)
		if !ok {
			return nil, fmt.Errorf("glyph table %s: cannot encode %q", name, p.From)
		}
		pos := trie.AllocPositionForWord(key)
		if pos == 0 {
			return nil, fmt.Errorf("glyph table %s: could not allocate trie position for %q", name, p.From)
		}
		if seen[pos] {
			continue // first entry wins
		}
		seen[pos] = true
		table.targets = append(table.targets, p.To)
		pending = append(pending, pendingTarget{pos: pos, target: len(table.targets)})
	}
	trie.Freeze()
	for _, p := range pending {
		state := trie.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("glyph table %s: could not resolve trie position %d after freeze", name, p.pos)
		}
		for state >= len(table.stateTarget) {
			table.stateTarget = append(table.stateTarget, 0)
		}
		table.stateTarget[state] = int32(p.target)
	}
	stats := trie.Stats()
	tracer().Debugf("glyph table %s: %d entries, trie used=%d total=%d fill=%.2f",
		name, len(table.targets), stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return table, nil
}

// mustGlyphTable is for the package-level tables, which are known to compile.
func mustGlyphTable(name string, pairs []GlyphPair) *GlyphTable {
	table, err := NewGlyphTable(name, pairs)
	assert(err == nil, fmt.Sprintf("glyph table %s does not compile: %v", name, err))
	return table
}

// absorbingMarks makes t drop nonspacing marks which directly follow a
// replaced glyph. Such marks are stray after NFC and would otherwise attach
// to the replacement.
func (t *GlyphTable) absorbingMarks() *GlyphTable {
	t.absorbMarks = true
	return t
}

// Len returns the number of distinct source glyphs.
func (t *GlyphTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.targets)
}

// Apply performs all substitutions of t on text.
// If nothing matches, text is returned as is.
func (t *GlyphTable) Apply(text string) string {
	return t.applyCased(text, nil, nil)
}

// applyCased is Apply with a choice between the targets of t and of alt,
// which must be compiled from the same source glyphs in the same order.
// For every match with differing targets, useAlt is called with the runes of
// text and the rune span of the match; if it returns true, the target of alt
// is written. A nil alt makes applyCased the same as Apply.
func (t *GlyphTable) applyCased(text string, alt *GlyphTable, useAlt func(rs []rune, start, end int) bool) string {
	if t == nil || t.trie == nil || text == "" {
		return text
	}
	assert(alt == nil || len(alt.targets) == len(t.targets), "glyph tables differ in size")
	key, _ := t.trie.EncodeKey(text) // a frozen trie encodes every rune
	var rs []rune
	var b strings.Builder
	var offsets []int
	copied := 0 // byte offset up to which text has been written to b
	for i := 0; i < len(key); {
		target, n := t.longestMatch(key[i:])
		if n == 0 {
			i++
			continue
		}
		if offsets == nil {
			offsets = runeByteOffsets(text)
			if alt != nil || t.absorbMarks {
				rs = []rune(text)
			}
			b.Grow(len(text) + 8)
		}
		b.WriteString(text[copied:offsets[i]])
		if alt != nil && t.targets[target] != alt.targets[target] && useAlt(rs, i, i+n) {
			b.WriteString(alt.targets[target])
		} else {
			b.WriteString(t.targets[target])
		}
		i += n
		for t.absorbMarks && i < len(rs) && unicode.Is(unicode.Mn, rs[i]) {
			i++
		}
		copied = offsets[i]
	}
	if offsets == nil {
		return text
	}
	b.WriteString(text[copied:])
	return b.String()
}

// longestMatch follows key through the trie and remembers the last state
// carrying a replacement.
func (t *GlyphTable) longestMatch(key []uint16) (target, length int) {
	if key[0] == 0 {
		return 0, 0
	}
	it := t.trie.Iterator()
	for j, c := range key {
		state := it.Next(c)
		if state == 0 {
			break
		}
		if state < len(t.stateTarget) && t.stateTarget[state] > 0 {
			target, length = int(t.stateTarget[state]-1), j+1
		}
	}
	return target, length
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}
