package game

import (
	"testing"

	"geoquiz/internal/domain"
)

func answer(correct bool) domain.Answer {
	submitted := "France"
	if !correct {
		submitted = "Spain"
	}
	return domain.NewAnswer(0, "p1", "Alice", submitted, "France", "fr.png")
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []domain.Answer
		want    int
	}{
		{"no answers", nil, 0},
		{"all correct", []domain.Answer{answer(true), answer(true)}, 100},
		{"none correct", []domain.Answer{answer(false)}, 0},
		{"two of three", []domain.Answer{answer(true), answer(true), answer(false)}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLeaderboard(t *testing.T) {
	all := []domain.PlayerAnswers{
		{PlayerID: "p1", PlayerName: "Alice", Answers: []domain.Answer{answer(true), answer(false)}},
		{PlayerID: "p2", PlayerName: "Bob", Answers: []domain.Answer{answer(true), answer(true)}},
		{PlayerID: "p3", PlayerName: "Carol", Answers: nil},
	}

	board := Leaderboard(all)
	if len(board) != 3 {
		t.Fatalf("leaderboard has %d entries, want 3", len(board))
	}

	if board[0].PlayerName != "Bob" || board[0].Score != 100 {
		t.Errorf("first place = %+v, want Bob at 100", board[0])
	}
	if board[1].PlayerName != "Alice" || board[1].Correct != 1 || board[1].Total != 2 {
		t.Errorf("second place = %+v, want Alice 1/2", board[1])
	}
	if board[2].PlayerName != "Carol" || board[2].Score != 0 {
		t.Errorf("last place = %+v, want Carol at 0", board[2])
	}
}
