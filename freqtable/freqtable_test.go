package freqtable

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReaderStreamsEntries(t *testing.T) {
	r := NewReader(strings.NewReader(`{"rmãn": 3, "ãnã": 2}`))
	want := []struct {
		context string
		count   int
	}{{"rmãn", 3}, {"ãnã", 2}}
	for _, w := range want {
		context, count, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if context != w.context || count != w.count {
			t.Fatalf("got (%q, %d), want (%q, %d)", context, count, w.context, w.count)
		}
	}
	for i := 0; i < 2; i++ {
		if _, _, err := r.Next(); err != io.EOF {
			t.Fatalf("expected io.EOF, got %v", err)
		}
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	model, err := Load("test",
		strings.NewReader(`{"rmãn": 1, "zburã": 6}`),
		strings.NewReader(`{"rmân": 8}`))
	if err != nil {
		t.Fatal(err)
	}
	if n := model.CountFor(orthography.Circumflex, "rmãn"); n != 8 {
		t.Errorf("expected circumflex count 8, got %d", n)
	}
	if n := model.CountFor(orthography.Schwa, "zburã"); n != 6 {
		t.Errorf("expected schwa count 6, got %d", n)
	}
}

func TestLoadMalformed(t *testing.T) {
	for _, src := range []string{
		``,
		`[1, 2]`,
		`{"rmãn": 1`,
		`{"rmãn": "x"}`,
		`{"rmãn": 1.5}`,
		`{"rmãn": -4}`,
	} {
		_, err := Load("malformed", strings.NewReader(src), nil)
		if !orthography.IsResourceError(err) {
			t.Errorf("expected resource error for %q, got %v", src, err)
		}
	}
}

func TestLoadFilesMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	dir := t.TempDir()
	model, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("missing tables must not be an error: %v", err)
	}
	if model.Size() != 0 {
		t.Errorf("expected empty model, has %d contexts", model.Size())
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CircumflexFile), []byte(`{"rmãn": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	model, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n := model.CountFor(orthography.Circumflex, "rmãn"); n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
	broken := filepath.Join(dir, SchwaFile)
	if err := os.WriteFile(broken, []byte(`{"rmãn": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); !orthography.IsResourceError(err) {
		t.Errorf("expected resource error for corrupt table, got %v", err)
	}
}
