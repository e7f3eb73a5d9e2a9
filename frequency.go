package orthography

import (
	"fmt"
	"io"
	"strings"
)

// FrequencyCounter is the capability the vowel resolver needs from a
// frequency model.
type FrequencyCounter interface {
	CountFor(res Resolution, context string) int
}

// ContextReader yields context windows with their occurrence counts
// one-by-one. It should return io.EOF when the stream is exhausted.
type ContextReader interface {
	Next() (context string, count int, err error)
}

// FrequencyModel holds corpus-derived counts of context windows, one table
// per resolution (Schwa and Circumflex).
//
// Contexts are compiled into a frozen trie with a count pair per state.
// A FrequencyModel is read-only after loading and may be shared.
type FrequencyModel struct {
	Identifier string // identifies the model
	contexts   keyTrie
	counts     *countStore
	totals     [resolutionCount]int
	size       int
}

// LoadFrequencyModel compiles two context streams into a frequency model.
// A nil reader stands for an absent table. Context keys are canonicalized
// to lower-case unified spelling; counts of keys which become equal are
// summed.
//
// File formats are handled outside of this package, see package freqtable.
// Read errors and negative counts are reported as *ResourceError.
func LoadFrequencyModel(name string, schwa, circumflex ContextReader) (*FrequencyModel, error) {
	trie := newDATBackend()
	model := &FrequencyModel{
		Identifier: fmt.Sprintf("frequencies: %s", name),
		contexts:   trie,
	}
	type pendingCount struct {
		pos   int
		res   Resolution
		count int
	}
	pending := make([]pendingCount, 0, 1024)
	readers := [resolutionCount]ContextReader{Schwa: schwa, Circumflex: circumflex}
	for r, reader := range readers {
		if reader == nil {
			continue
		}
		res := Resolution(r)
		for {
			context, count, err := reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, &ResourceError{Resource: name, Err: fmt.Errorf("%s table: %w", res, err)}
			}
			if count < 0 {
				return nil, &ResourceError{Resource: name,
					Err: fmt.Errorf("%s table: negative count %d for context %q", res, count, context)}
			}
			context = canonicalContext(context)
			if context == "" || count == 0 {
				continue
			}
			key, ok := trie.EncodeKey(context)
			if !ok {
				tracer().Debugf("frequency model %s: cannot encode context %q, skipped", name, context)
				continue
			}
			pos := trie.AllocPositionForWord(key)
			if pos == 0 {
				return nil, &ResourceError{Resource: name,
					Err: fmt.Errorf("could not allocate trie position for context %q", context)}
			}
			pending = append(pending, pendingCount{pos: pos, res: res, count: count})
		}
	}
	trie.Freeze()
	stats := trie.Stats()
	model.counts = newCountStore(stats.MaxStateID + 1)
	for _, p := range pending {
		state := trie.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("frequency model %s: could not resolve trie position %d after freeze", name, p.pos)
		}
		if err := model.counts.Add(state, p.res, p.count); err != nil {
			return nil, &ResourceError{Resource: name, Err: err}
		}
	}
	model.totals, model.size = model.counts.Totals()
	tracer().Infof("frequency model %s: %d contexts, schwa=%d circumflex=%d, trie used=%d total=%d fill=%.2f",
		name, model.size, model.totals[Schwa], model.totals[Circumflex],
		stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return model, nil
}

// EmptyFrequencyModel returns a model without any counts. With it, the vowel
// resolver falls back to positional and default rules.
func EmptyFrequencyModel() *FrequencyModel {
	model, err := LoadFrequencyModel("empty", nil, nil)
	assert(err == nil, "empty frequency model does not load")
	return model
}

// CountFor returns the number of times context has been observed with res.
// Unseen contexts count 0; there is no smoothing.
func (m *FrequencyModel) CountFor(res Resolution, context string) int {
	if m == nil || m.contexts == nil || int(res) >= resolutionCount {
		return 0
	}
	key, _ := m.contexts.EncodeKey(canonicalContext(context))
	if len(key) == 0 {
		return 0
	}
	state := m.contexts.AllocPositionForWord(key) // lookup-only after Freeze
	return m.counts.Count(state, res)
}

// Size returns the number of distinct contexts with a non-zero count.
func (m *FrequencyModel) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Total returns the sum of all counts for res.
func (m *FrequencyModel) Total(res Resolution) int {
	if m == nil || int(res) >= resolutionCount {
		return 0
	}
	return m.totals[res]
}

// canonicalContext brings a context key into the form used for lookups:
// lower-case and unified spelling.
func canonicalContext(context string) string {
	return toUnified(strings.ToLower(context))
}
