package domain

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact match", "France", "France", true},
		{"case insensitive", "france", "France", true},
		{"surrounding whitespace", " france ", "France", true},
		{"misspelled", "Frnace", "France", false},
		{"empty submission", "", "France", false},
		{"multi-word", "  new zealand", "New Zealand", true},
		{"partial", "Fran", "France", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.submitted, tt.correct); got != tt.want {
				t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestNewAnswerScoresOnce(t *testing.T) {
	a := NewAnswer(2, "p1", "Alice", " france ", "France", "fr.png")

	if !a.IsCorrect {
		t.Error("expected answer to be scored correct")
	}
	if a.QuestionIndex != 2 {
		t.Errorf("QuestionIndex = %d, want 2", a.QuestionIndex)
	}
	if a.Answer != " france " {
		t.Errorf("submitted text should be preserved verbatim, got %q", a.Answer)
	}
	if a.CorrectAnswer != "France" {
		t.Errorf("CorrectAnswer = %q, want France", a.CorrectAnswer)
	}
}
