package game

import (
	"testing"

	"geoquiz/internal/domain"
)

func testCountries(n int) []domain.Country {
	countries := make([]domain.Country, n)
	names := []string{"France", "Japan", "Brazil", "Kenya", "Fiji"}
	for i := range countries {
		countries[i] = domain.Country{Name: names[i%len(names)], Difficulty: 1}
	}
	return countries
}

func TestSequencerWalk(t *testing.T) {
	const count = 3
	s := NewSequencer(testCountries(count))

	q := s.Current()
	if q == nil || q.Index != 0 {
		t.Fatalf("Current() = %+v, want index 0", q)
	}

	// Exactly count advances: count-1 questions, then exhaustion.
	for i := 1; i < count; i++ {
		q = s.Advance()
		if q == nil {
			t.Fatalf("Advance() %d returned nil before exhaustion", i)
		}
		if q.Index != i {
			t.Errorf("Advance() %d has index %d", i, q.Index)
		}
	}

	if q = s.Advance(); q != nil {
		t.Errorf("Advance() past the end = %+v, want nil", q)
	}

	// Exhaustion is terminal.
	if s.Current() != nil {
		t.Error("Current() after exhaustion should be nil")
	}
	if s.Advance() != nil {
		t.Error("Advance() after exhaustion should stay nil")
	}
}

func TestSequencerByIndex(t *testing.T) {
	s := NewSequencer(testCountries(3))

	// Indexes already advanced past still resolve.
	s.Advance()
	s.Advance()
	if q := s.ByIndex(0); q == nil || q.Index != 0 {
		t.Errorf("ByIndex(0) = %+v, want index 0", q)
	}

	for _, i := range []int{-1, 3, 100} {
		if q := s.ByIndex(i); q != nil {
			t.Errorf("ByIndex(%d) = %+v, want nil", i, q)
		}
	}
}
