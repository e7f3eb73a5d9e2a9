/*
Package dat holds the frozen double-array trie used for glyph tables and
frequency contexts.

A DAT is built once by package orthography and never modified afterwards,
therefore it may be shared between goroutines without locking.
*/
package dat

// DAT is a frozen double-array trie over a dense rune alphabet.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Payloads are not part of the trie. Clients keep them in side tables
// indexed by state, e.g. replacement strings or context counts.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// MapPaged maps BMP code units to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Lookup follows key from the root and returns the final state.
// An empty key or a key leaving the trie yields (0, false).
func (d *DAT) Lookup(key []uint16) (uint32, bool) {
	if len(key) == 0 {
		return 0, false
	}
	state := d.Root
	for _, c := range key {
		next, ok := d.Transition(state, c)
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet or outside the BMP.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}
