// Package questions supplies question records for a game: random
// countries, selected without replacement, filtered by difficulty.
package questions

import (
	"math/rand"

	"geoquiz/internal/domain"
)

// Store serves questions from an in-memory dataset.
type Store struct {
	countries []domain.Country
}

// NewStore creates a store over the embedded dataset.
func NewStore() *Store {
	return &Store{countries: Countries}
}

// NewStoreWith creates a store over a custom dataset.
func NewStoreWith(countries []domain.Country) *Store {
	return &Store{countries: countries}
}

// FetchQuestions returns count random countries from the requested
// difficulty levels, each at most once. It fails when the filtered
// dataset is smaller than count.
func (s *Store) FetchQuestions(count int, difficultyLevels []int) ([]domain.Country, error) {
	wanted := make(map[int]bool, len(difficultyLevels))
	for _, d := range difficultyLevels {
		wanted[d] = true
	}

	pool := make([]domain.Country, 0, len(s.countries))
	for _, c := range s.countries {
		if wanted[c.Difficulty] {
			pool = append(pool, c)
		}
	}

	if len(pool) < count {
		return nil, domain.ErrNotEnoughQuestions
	}

	picked := make([]domain.Country, 0, count)
	for _, i := range rand.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return picked, nil
}
