package genid

import "testing"

func TestSequence(t *testing.T) {
	s := NewSequence("TC")

	want := []string{"TC-001", "TC-002", "TC-003"}
	for i, w := range want {
		if got := s.Next(); got != w {
			t.Errorf("Next() call %d = %s, want %s", i+1, got, w)
		}
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	a := NewSequence("US")
	b := NewSequence("US")

	a.Next()
	a.Next()

	if got := b.Next(); got != "US-001" {
		t.Errorf("fresh sequence started at %s, want US-001", got)
	}
}

func TestSequencePadsBeyondThreeDigits(t *testing.T) {
	s := NewSequence("F")
	var last string
	for i := 0; i < 1000; i++ {
		last = s.Next()
	}
	if last != "F-1000" {
		t.Errorf("1000th id = %s, want F-1000", last)
	}
}
