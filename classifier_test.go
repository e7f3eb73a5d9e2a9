package orthography

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type stubPredictor struct {
	label Standard
	p     float64
	err   error
}

func (s stubPredictor) Predict(string) (Standard, error) {
	return s.label, s.err
}

func (s stubPredictor) PredictProba(string) (map[Standard]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[Standard]float64{s.label: s.p, Unknown: 1 - s.p}, nil
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		text string
		want Standard
	}{
		{"Bunã dzua! Cum eshti?", StandardB},
		{"Bună dzua! Cum ești?", Mixed},
		{"Eara ună oarã", Mixed},
		{"Eara ună", StandardA},
		{"d\u0326ua", StandardA},
		{"SHI", StandardB},
		{"Eara un omu.", Unknown},
		{"", Unknown},
		// decomposed spellings
		{"Buna\u0306 ziua, ca\u0302nta\u0306", StandardA},
		{"I\u0302mbar", StandardA},
		{"s\u0326i", StandardA},
		{"Buna\u0303", StandardB},
	}
	for _, tt := range tests {
		if got := Heuristic(tt.text); got != tt.want {
			t.Errorf("Heuristic(%q): got %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifierWithoutPredictor(t *testing.T) {
	c := NewClassifier(nil, DefaultThreshold)
	if l := c.Classify("Bunã dzua! Cum eshti?"); l.String() != "standardB" {
		t.Errorf("expected standardB, got %s", l)
	}
	if l := c.Classify("Bună dzua! Cum ești?"); l.String() != "mixed" {
		t.Errorf("expected mixed, got %s", l)
	}
}

func TestClassifierOverrideThreshold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	text := "Eara un omu."
	c := NewClassifier(stubPredictor{label: StandardA, p: 0.9}, DefaultThreshold)
	r := c.Explain(text)
	if r.Label != StandardA || !r.Overridden || r.Heuristic != Unknown {
		t.Errorf("expected override to standardA, got %+v", r)
	}
	c = NewClassifier(stubPredictor{label: StandardA, p: 0.5}, DefaultThreshold)
	if l := c.Classify(text); l != Unknown {
		t.Errorf("expected heuristic verdict unknown, got %s", l)
	}
	c = NewClassifier(stubPredictor{label: StandardA, p: 0.8}, DefaultThreshold)
	if l := c.Classify(text); l != Unknown {
		t.Errorf("probability equal to threshold must not override, got %s", l)
	}
	c = NewClassifier(stubPredictor{label: StandardA, p: 0.7}, 0.6)
	if l := c.Classify(text); l != StandardA {
		t.Errorf("expected configured threshold to apply, got %s", l)
	}
	c = NewClassifier(stubPredictor{label: StandardB, p: 0.95}, DefaultThreshold)
	if l := c.Classify("Bună dzua! Cum ești?"); l != StandardB {
		t.Errorf("expected override of mixed verdict, got %s", l)
	}
}

func TestClassifierPredictorFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	c := NewClassifier(stubPredictor{label: StandardA, p: 0.99, err: errors.New("incompatible model")}, DefaultThreshold)
	r := c.Explain("Bunã dzua! Cum eshti?")
	if r.Label != StandardB || r.Overridden {
		t.Errorf("expected fallback to heuristics, got %+v", r)
	}
}
