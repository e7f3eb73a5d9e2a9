package orthography

import "testing"

func TestCountStoreAdd(t *testing.T) {
	s := newCountStore(0)
	if err := s.Add(42, Schwa, 5); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(42, Schwa, 3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(42, Circumflex, 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if n := s.Count(42, Schwa); n != 8 {
		t.Fatalf("schwa count mismatch: got %d, want 8", n)
	}
	if n := s.Count(42, Circumflex); n != 1 {
		t.Fatalf("circumflex count mismatch: got %d, want 1", n)
	}
	if n := s.Count(7, Schwa); n != 0 {
		t.Fatalf("absent state should count 0, got %d", n)
	}
}

func TestCountStoreRejects(t *testing.T) {
	s := newCountStore(4)
	if err := s.Add(1, Schwa, -1); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if err := s.Add(0, Schwa, 1); err == nil {
		t.Fatalf("expected error for state 0")
	}
	if err := s.Add(1, WordInitial, 1); err == nil {
		t.Fatalf("expected error for word-initial resolution")
	}
}

func TestCountStoreTotals(t *testing.T) {
	s := newCountStore(4)
	_ = s.Add(2, Schwa, 4)
	_ = s.Add(3, Circumflex, 6)
	_ = s.Add(3, Schwa, 1)
	totals, contexts := s.Totals()
	if totals[Schwa] != 5 || totals[Circumflex] != 6 {
		t.Fatalf("totals mismatch: %v", totals)
	}
	if contexts != 2 {
		t.Fatalf("expected 2 contexts, got %d", contexts)
	}
}
