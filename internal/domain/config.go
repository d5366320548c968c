package domain

// Game configuration bounds, matching what the host setup screen
// offers.
const (
	DefaultQuestionsCount  = 10
	DefaultTimePerQuestion = 30 // seconds

	MinQuestions = 5
	MaxQuestions = 50
	MinTime      = 10
	MaxTime      = 120
)

// GameConfig holds the session parameters the host picks before the
// game starts. It is pushed to each client on join and immutable once
// the game is running.
type GameConfig struct {
	QuestionsCount   int   `json:"questionsCount"`
	TimePerQuestion  int   `json:"timePerQuestion"`
	DifficultyLevels []int `json:"difficultyLevels"`
}

// DefaultGameConfig returns the default session parameters.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		QuestionsCount:   DefaultQuestionsCount,
		TimePerQuestion:  DefaultTimePerQuestion,
		DifficultyLevels: []int{1, 2, 3},
	}
}

// Validate checks the config against the supported bounds.
func (c GameConfig) Validate() error {
	if c.QuestionsCount < MinQuestions || c.QuestionsCount > MaxQuestions {
		return ErrInvalidConfig
	}
	if c.TimePerQuestion < MinTime || c.TimePerQuestion > MaxTime {
		return ErrInvalidConfig
	}
	if len(c.DifficultyLevels) == 0 {
		return ErrInvalidConfig
	}
	return nil
}
