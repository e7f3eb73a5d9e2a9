package orthography

// keyIterator iterates over successive prefix states for one key.
type keyIterator interface {
	Next(symbol uint16) int
}

type keyTrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s keyTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// keyTrie is the internal backend abstraction for rune-keyed lookup tables.
// Glyph tables and frequency contexts are both compiled into one.
//
// Lifecycle: keys are allocated while building, then Freeze turns the trie
// read-only. Positions handed out before Freeze must be translated with
// ResolvePosition afterwards.
type keyTrie interface {
	EncodeKey(s string) ([]uint16, bool)
	AllocPositionForWord(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Iterator() keyIterator
	Stats() keyTrieStats
}
