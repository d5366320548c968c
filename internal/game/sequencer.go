package game

import (
	"geoquiz/internal/domain"
)

// Sequencer walks an ordered, finite question sequence generated once
// per game start. Exhaustion is terminal; a new game needs a new
// sequencer.
type Sequencer struct {
	countries []domain.Country
	index     int
}

// NewSequencer wraps the generated country sequence.
func NewSequencer(countries []domain.Country) *Sequencer {
	return &Sequencer{countries: countries}
}

// Current returns the question at the current index, or nil once the
// sequence is exhausted.
func (s *Sequencer) Current() *domain.Question {
	return s.ByIndex(s.index)
}

// Advance moves to the next question and returns it, or nil if the
// sequence is now exhausted.
func (s *Sequencer) Advance() *domain.Question {
	s.index++
	return s.Current()
}

// ByIndex returns the question at an arbitrary position. A slow
// client's answer may reference an index the sequence has already
// moved past, so lookups are not bounded by the current index.
func (s *Sequencer) ByIndex(i int) *domain.Question {
	if i < 0 || i >= len(s.countries) {
		return nil
	}
	return &domain.Question{
		Country: s.countries[i],
		Index:   i,
	}
}

// Len returns the total number of questions in the sequence.
func (s *Sequencer) Len() int {
	return len(s.countries)
}
