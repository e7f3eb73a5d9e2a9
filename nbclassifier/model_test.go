package nbclassifier

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var standardB = []string{
	"Bunã dzua, cum s-dzuce?",
	"Mini hiu armãn shi zburãscu armãneashti.",
	"Shi njilji di oi easte tsi lja",
	"Tsi fatsi tini?",
	"Ljepurlu fudzi tu pãduri",
}

var standardA = []string{
	"Bună d\u0326ua, cum s-d\u0326uce?",
	"Mini hiu armân și zburăscu armâneaști.",
	"Și ńiľi di oi easte ți ľa",
	"Ți fați tini?",
	"Ľepurlu fud\u0326i tu pădure",
}

func trainingSamples() []Sample {
	var samples []Sample
	for _, s := range standardA {
		samples = append(samples, Sample{Text: s, Label: orthography.StandardA})
	}
	for _, s := range standardB {
		samples = append(samples, Sample{Text: s, Label: orthography.StandardB})
	}
	return samples
}

func trainedModel(t *testing.T) *Model {
	t.Helper()
	opts := DefaultTrainOptions()
	opts.MinDF = 1
	m, err := Train(trainingSamples(), opts)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNGramsAreGraphemes(t *testing.T) {
	got := ngrams("Ab  d\u0326", 1, 2)
	want := []string{"a", "b", " ", "d\u0326", "ab", "b ", " d\u0326"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTrainSeparatesStandards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	m := trainedModel(t)
	tests := []struct {
		text string
		want orthography.Standard
	}{
		{"Shi tsi fatsi armãnlji?", orthography.StandardB},
		{"Și ți fați armânľi?", orthography.StandardA},
	}
	for _, tt := range tests {
		label, err := m.Predict(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if label != tt.want {
			t.Errorf("Predict(%q): got %s, want %s", tt.text, label, tt.want)
		}
		proba, err := m.PredictProba(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		sum := 0.0
		for _, p := range proba {
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("probabilities do not sum to 1: %v", proba)
		}
		if proba[tt.want] <= 0.5 {
			t.Errorf("expected %s to be most probable, have %v", tt.want, proba)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	m := trainedModel(t)
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load("roundtrip", &buf)
	if err != nil {
		t.Fatal(err)
	}
	text := "Bunã dzua, Ljepurlu"
	p1, _ := m.PredictProba(text)
	p2, _ := loaded.PredictProba(text)
	for label, p := range p1 {
		if math.Abs(p-p2[label]) > 1e-9 {
			t.Errorf("probability of %s changed after loading: %g vs %g", label, p, p2[label])
		}
	}
}

func TestLoadRejects(t *testing.T) {
	for _, src := range []string{
		`{"format": 99, "ngram_min": 1, "ngram_max": 3}`,
		`{"format": 1, "ngram_min": 1, "ngram_max": 1, "labels": ["standardA", "standardB"],
		  "vocabulary": {"a": 0}, "idf": [], "class_log_prior": [0, 0], "feature_log_prob": [[0], [0]]}`,
		`{"format": 1, "ngram_min": 1, "ngram_max": 1, "labels": ["standardA", "klingon"],
		  "vocabulary": {}, "idf": [], "class_log_prior": [0, 0], "feature_log_prob": [[], []]}`,
		`{"format": `,
	} {
		if _, err := Load("broken", strings.NewReader(src)); !orthography.IsResourceError(err) {
			t.Errorf("expected resource error, got %v", err)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	m, err := LoadFile(filepath.Join(t.TempDir(), "orthography_model.json"))
	if err != nil || m != nil {
		t.Errorf("missing model should yield nil, nil; got %v, %v", m, err)
	}
	var none *Model
	if _, err := none.Predict("x"); err == nil {
		t.Errorf("expected error from nil model")
	}
}

func TestTrainNeedsTwoLabels(t *testing.T) {
	_, err := Train([]Sample{{Text: "shi", Label: orthography.StandardB}}, DefaultTrainOptions())
	if !errors.Is(err, orthography.ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
}
