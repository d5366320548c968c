package game

import (
	"geoquiz/internal/domain"
)

// Collector accumulates answers for the whole session, keyed by player
// id. It is independent of roster membership: a player leaving does
// not discard what they already answered. Duplicate submissions for
// the same question are retained as-is.
type Collector struct {
	answers map[string][]domain.Answer
	order   []string // player ids in first-answer order
}

// NewCollector creates an empty answer collector.
func NewCollector() *Collector {
	return &Collector{answers: make(map[string][]domain.Answer)}
}

// Record appends an answer to the player's list, creating it on first
// use.
func (c *Collector) Record(playerID string, answer domain.Answer) {
	if _, ok := c.answers[playerID]; !ok {
		c.order = append(c.order, playerID)
	}
	c.answers[playerID] = append(c.answers[playerID], answer)
}

// NameResolver maps a player id to a display name, or "" if unknown.
type NameResolver func(playerID string) string

// DrainAll produces one aggregate per player ever recorded, in
// first-answer order. The resolver supplies the best-known display
// name (current roster, then the departed-name lookup); when it
// returns nothing the raw id stands in.
func (c *Collector) DrainAll(resolve NameResolver) []domain.PlayerAnswers {
	all := make([]domain.PlayerAnswers, 0, len(c.order))
	for _, id := range c.order {
		name := resolve(id)
		if name == "" {
			name = id
		}
		all = append(all, domain.PlayerAnswers{
			PlayerID:   id,
			PlayerName: name,
			Answers:    c.answers[id],
		})
	}
	return all
}

// Clear discards all recorded answers.
func (c *Collector) Clear() {
	c.answers = make(map[string][]domain.Answer)
	c.order = nil
}
