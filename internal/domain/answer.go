package domain

import "strings"

// Answer is one submitted answer, scored once at creation and immutable
// after that.
type Answer struct {
	QuestionIndex int    `json:"questionIndex"`
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	FlagFile      string `json:"flagFile"`
}

// NewAnswer builds a scored answer for the given question.
func NewAnswer(questionIndex int, playerID, playerName, submitted, correct, flagFile string) Answer {
	return Answer{
		QuestionIndex: questionIndex,
		PlayerID:      playerID,
		PlayerName:    playerName,
		Answer:        submitted,
		CorrectAnswer: correct,
		IsCorrect:     CheckAnswer(submitted, correct),
		FlagFile:      flagFile,
	}
}

// CheckAnswer compares a submitted answer against the correct one,
// ignoring case and surrounding whitespace.
func CheckAnswer(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// PlayerAnswers groups every answer one player gave during a session.
// It is built at game end and must resolve the player's display name
// even if they disconnected before the end.
type PlayerAnswers struct {
	PlayerID   string   `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Answers    []Answer `json:"answers"`
}
