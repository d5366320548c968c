package domain

// Country is one record from the trivia dataset. FlagFile is a display
// key for the presentation layer; correctness is always computed
// against Name, never against the key.
type Country struct {
	Name       string `json:"name"`
	Region     string `json:"region"`
	Difficulty int    `json:"difficulty"`
	FlagFile   string `json:"flagFile"`
}

// Question is one position in the host's generated sequence. Index is
// used to correlate late-arriving answers with the right question.
type Question struct {
	Country Country `json:"country"`
	Index   int     `json:"questionIndex"`
}
