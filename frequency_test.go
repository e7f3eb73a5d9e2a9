package orthography

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type contextCount struct {
	context string
	count   int
}

type sliceContextReader struct {
	entries []contextCount
	index   int
	err     error
}

func (r *sliceContextReader) Next() (string, int, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", 0, r.err
		}
		return "", 0, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.context, entry.count, nil
}

func TestFrequencyModelCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	model, err := LoadFrequencyModel("test",
		&sliceContextReader{entries: []contextCount{{"rmân", 2}, {"rmăn", 3}, {"așa", 1}}},
		&sliceContextReader{entries: []contextCount{{"rmãn", 7}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if n := model.CountFor(Schwa, "rmãn"); n != 5 {
		t.Errorf("expected merged schwa count 5, got %d", n)
	}
	if n := model.CountFor(Circumflex, "rmãn"); n != 7 {
		t.Errorf("expected circumflex count 7, got %d", n)
	}
	if n := model.CountFor(Schwa, "RMÃN"); n != 5 {
		t.Errorf("lookup should be case-insensitive, got %d", n)
	}
	if n := model.CountFor(Schwa, "asha"); n != 1 {
		t.Errorf("expected consonants of keys to be unified, got %d", n)
	}
	if n := model.CountFor(Schwa, "rmã"); n != 0 {
		t.Errorf("prefix of a context should count 0, got %d", n)
	}
	if n := model.CountFor(Schwa, "xyzzy"); n != 0 {
		t.Errorf("unseen context should count 0, got %d", n)
	}
	if n := model.CountFor(WordInitial, "rmãn"); n != 0 {
		t.Errorf("word-initial has no table, got %d", n)
	}
	if model.Size() != 2 {
		t.Errorf("expected 2 contexts, have %d", model.Size())
	}
	if model.Total(Schwa) != 6 || model.Total(Circumflex) != 7 {
		t.Errorf("totals mismatch: schwa=%d circumflex=%d", model.Total(Schwa), model.Total(Circumflex))
	}
}

func TestFrequencyModelAbsentTable(t *testing.T) {
	model, err := LoadFrequencyModel("half", nil,
		&sliceContextReader{entries: []contextCount{{"mãnã", 4}}})
	if err != nil {
		t.Fatal(err)
	}
	if n := model.CountFor(Circumflex, "mãnã"); n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if n := model.CountFor(Schwa, "mãnã"); n != 0 {
		t.Errorf("expected 0 for absent table, got %d", n)
	}
}

func TestFrequencyModelEmpty(t *testing.T) {
	model := EmptyFrequencyModel()
	if model.Size() != 0 || model.CountFor(Schwa, "ãn") != 0 {
		t.Errorf("empty model should not count anything")
	}
	var none *FrequencyModel
	if none.CountFor(Circumflex, "ãn") != 0 || none.Size() != 0 {
		t.Errorf("nil model should not count anything")
	}
}

func TestFrequencyModelResourceErrors(t *testing.T) {
	_, err := LoadFrequencyModel("negative",
		&sliceContextReader{entries: []contextCount{{"ãn", -1}}}, nil)
	if !IsResourceError(err) {
		t.Errorf("expected resource error for negative count, got %v", err)
	}
	broken := errors.New("broken stream")
	_, err = LoadFrequencyModel("broken", nil,
		&sliceContextReader{entries: []contextCount{{"ãn", 1}}, err: broken})
	if !IsResourceError(err) || !errors.Is(err, broken) {
		t.Errorf("expected resource error wrapping the read error, got %v", err)
	}
}
