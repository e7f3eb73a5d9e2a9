package orthography

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// mapCounter is a FrequencyCounter stub.
type mapCounter map[Resolution]map[string]int

func (m mapCounter) CountFor(res Resolution, context string) int {
	return m[res][context]
}

func TestWordInitialRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	freq := mapCounter{
		Circumflex: {"ãmb": 100},
		Schwa:      {"ãmb": 50},
	}
	for _, vr := range []*VowelResolver{NewVowelResolver(freq), NewVowelResolver(nil)} {
		word := []rune("ãmbar")
		if res := vr.Resolve(word, 0); res != WordInitial {
			t.Errorf("expected word-initial resolution, got %s", res)
		}
		if g := vr.Glyph(word, 0, true); g != 'Î' {
			t.Errorf("expected Î, got %c", g)
		}
	}
}

func TestFrequencyRule(t *testing.T) {
	word := []rune("armãn")
	vr := NewVowelResolver(mapCounter{
		Circumflex: {"rmãn": 5},
		Schwa:      {"rmãn": 2},
	})
	if res := vr.Resolve(word, 3); res != Circumflex {
		t.Errorf("expected circumflex, got %s", res)
	}
	vr = NewVowelResolver(mapCounter{
		Circumflex: {"rmãn": 2},
		Schwa:      {"rmãn": 5},
	})
	if res := vr.Resolve(word, 3); res != Schwa {
		t.Errorf("expected schwa, got %s", res)
	}
	if g := vr.Glyph(word, 3, false); g != 'ă' {
		t.Errorf("expected ă, got %c", g)
	}
}

func TestTieBreakDeterminism(t *testing.T) {
	model, err := LoadFrequencyModel("tie",
		&sliceContextReader{entries: []contextCount{{"rmãn", 3}}},
		&sliceContextReader{entries: []contextCount{{"rmãn", 3}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	vr := NewVowelResolver(model)
	for i := 0; i < 10; i++ {
		if res := vr.Resolve([]rune("armãn"), 3); res != DefaultResolution {
			t.Fatalf("expected default resolution on tie, got %s", res)
		}
	}
	if res := NewVowelResolver(nil).Resolve([]rune("armãn"), 3); res != DefaultResolution {
		t.Errorf("expected default resolution for unseen context, got %s", res)
	}
}

func TestContextWindow(t *testing.T) {
	tests := []struct {
		word string
		at   int
		want string
	}{
		{"armãnã", 3, "rmãnã"},
		{"armãnã", 5, "ãnã"},
		{"ãn", 0, "ãn"},
		{"ARMÃN", 3, "rmãn"},
		{"ãn", 2, ""},
		{"ãn", -1, ""},
	}
	for _, tt := range tests {
		if got := ContextWindow([]rune(tt.word), tt.at); got != tt.want {
			t.Errorf("ContextWindow(%q, %d): got %q, want %q", tt.word, tt.at, got, tt.want)
		}
	}
}
