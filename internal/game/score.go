package game

import (
	"math"
	"sort"

	"geoquiz/internal/domain"
)

// LeaderboardEntry is one player's final standing.
type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"` // percentage of correct answers
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
}

// Score returns the percentage of correct answers, rounded to the
// nearest integer. An empty list scores zero.
func Score(answers []domain.Answer) int {
	if len(answers) == 0 {
		return 0
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(answers)) * 100))
}

// Leaderboard ranks the final aggregate by score, descending. Ties
// keep the aggregate's order, so earlier answerers rank first.
func Leaderboard(all []domain.PlayerAnswers) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(all))
	for _, pa := range all {
		correct := 0
		for _, a := range pa.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		entries = append(entries, LeaderboardEntry{
			PlayerName: pa.PlayerName,
			Score:      Score(pa.Answers),
			Correct:    correct,
			Total:      len(pa.Answers),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries
}
