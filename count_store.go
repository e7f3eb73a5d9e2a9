package orthography

import "fmt"

const initialCountStoreSlots = 2 // include slot 0 + root slot

// countStore keeps one count per resolution, directly indexed by trie state.
// It is written only while a FrequencyModel is loaded.
type countStore struct {
	counts [][resolutionCount]uint32 // will grow with demand
}

func newCountStore(slots int) *countStore {
	if slots < initialCountStoreSlots {
		slots = initialCountStoreSlots
	}
	return &countStore{
		counts: make([][resolutionCount]uint32, slots),
	}
}

func (s *countStore) ensure(pos int) {
	if pos < len(s.counts) {
		return
	}
	grow := pos + 1 - len(s.counts)
	s.counts = append(s.counts, make([][resolutionCount]uint32, grow)...)
}

// Add accumulates n occurrences of resolution res at trie state pos.
func (s *countStore) Add(pos int, res Resolution, n int) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie state: %d", pos)
	}
	if int(res) >= resolutionCount {
		return fmt.Errorf("resolution %v has no frequency table", res)
	}
	if n < 0 {
		return fmt.Errorf("negative count: %d", n)
	}
	s.ensure(pos)
	sum := uint64(s.counts[pos][res]) + uint64(n)
	if sum > uint64(^uint32(0)) {
		sum = uint64(^uint32(0)) // saturate
	}
	s.counts[pos][res] = uint32(sum)
	return nil
}

// Count returns the count for res at trie state pos, 0 if absent.
func (s *countStore) Count(pos int, res Resolution) int {
	if pos <= 0 || pos >= len(s.counts) || int(res) >= resolutionCount {
		return 0
	}
	return int(s.counts[pos][res])
}

// Totals sums all counts per resolution and reports how many states carry a
// non-zero count.
func (s *countStore) Totals() (totals [resolutionCount]int, contexts int) {
	for _, c := range s.counts {
		nonzero := false
		for r, n := range c {
			totals[r] += int(n)
			nonzero = nonzero || n > 0
		}
		if nonzero {
			contexts++
		}
	}
	return
}
