package orthography

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEngineDegraded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orthography")
	defer teardown()
	//
	e := NewEngine()
	if l := e.Classify("Bunã dzua! Cum eshti?"); l != StandardB {
		t.Errorf("expected standardB, got %s", l)
	}
	if l := e.Classify("Bună dzua! Cum ești?"); l != Mixed {
		t.Errorf("expected mixed, got %s", l)
	}
	if s := e.ToUnified("Bunã dzua! Cum eshti?"); s != "Bunã dzua! Cum eshti?" {
		t.Errorf("expected identity, got %q", s)
	}
	first := e.ToStandardA("Shi njilji di oi")
	for i := 0; i < 5; i++ {
		if s := e.ToStandardA("Shi njilji di oi"); s != first {
			t.Fatalf("conversion not reproducible: %q vs %q", s, first)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	model, err := LoadFrequencyModel("engine",
		nil, &sliceContextReader{entries: []contextCount{{"rmãn", 4}}})
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(
		WithFrequencyModel(model),
		WithPredictor(stubPredictor{label: StandardB, p: 0.7}),
		WithThreshold(0.6),
		WithVariant(VariantRomanian),
	)
	if s := e.ToStandardA("armãn"); s != "armân" {
		t.Errorf("expected armân, got %q", s)
	}
	if l := e.Classify("Eara un omu."); l != StandardB {
		t.Errorf("expected predictor override, got %s", l)
	}
	if s := e.Clean("Şi cînd"); s != "Și când" {
		t.Errorf("expected Romanian cleaning, got %q", s)
	}
	if e.Variant() != VariantRomanian {
		t.Errorf("variant not set")
	}
}

func TestEngineConvertTargets(t *testing.T) {
	e := NewEngine()
	if s, err := e.Convert("Bună dzua", "cunia"); err != nil || s != "Bunã dzua" {
		t.Errorf("expected Bunã dzua, got %q, %v", s, err)
	}
	if s, err := e.Convert("Bunã dzua", "standardA"); err != nil || s != "Bună d\u0326ua" {
		t.Errorf("expected Bună d\u0326ua, got %q, %v", s, err)
	}
	if _, err := e.Convert("x", "klingon"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument for unknown target, got %v", err)
	}
	if _, err := e.Convert("x", "mixed"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument for mixed target, got %v", err)
	}
	if s, err := e.Normalize("  Bună   dzua…", "b"); err != nil || s != "Bunã dzua..." {
		t.Errorf("expected cleaned and unified text, got %q, %v", s, err)
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	model, err := LoadFrequencyModel("concurrent",
		&sliceContextReader{entries: []contextCount{{"zburã", 2}}},
		&sliceContextReader{entries: []contextCount{{"rmãn", 4}}})
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(WithFrequencyModel(model))
	text := "Mini hiu armãn shi zburãscu armãneashti."
	want := e.ToStandardA(text)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				if got := e.ToStandardA(text); got != want {
					errs <- got
					return
				}
				_ = e.Classify(text)
				_ = e.Clean(text)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent conversion differs: %q vs %q", got, want)
	}
}
