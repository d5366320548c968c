package protocol

import (
	"geoquiz/internal/domain"
)

// Type tags a wire message
type Type string

// Client → Host message types
const (
	TypeJoinGame     Type = "JOIN_GAME"
	TypePlayerReady  Type = "PLAYER_READY"
	TypeSubmitAnswer Type = "SUBMIT_ANSWER"
)

// Host → Client message types
const (
	TypePlayerListUpdate    Type = "PLAYER_LIST_UPDATE"
	TypeGameConfig          Type = "GAME_CONFIG"
	TypeGameStart           Type = "GAME_START"
	TypeNewQuestion         Type = "NEW_QUESTION"
	TypeAnswerResult        Type = "ANSWER_RESULT"
	TypeTimeUpdate          Type = "TIME_UPDATE"
	TypeCalculatingResults  Type = "CALCULATING_RESULTS"
	TypeGameEnd             Type = "GAME_END"
	TypeServerStopped       Type = "SERVER_STOPPED"
	TypePlayerLeft          Type = "PLAYER_LEFT"
)

// Discovery side-channel message types
const (
	TypeGetHostInfo Type = "GET_HOST_INFO"
	TypeHostInfo    Type = "HOST_INFO"
)

// Message is one frame of the session protocol. The set of
// implementations is closed: every inbound frame decodes to exactly
// one of the types below, and dispatch points switch over all of them.
type Message interface {
	Type() Type
}

// JoinGame is sent by a client immediately after connecting.
type JoinGame struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// PlayerReady toggles a player's ready state in the lobby.
type PlayerReady struct {
	PlayerID string `json:"playerId"`
	IsReady  bool   `json:"isReady"`
}

// SubmitAnswer carries one answer for one question index.
type SubmitAnswer struct {
	PlayerID      string `json:"playerId"`
	PlayerName    string `json:"playerName"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// PlayerListUpdate is the full roster, broadcast on every membership
// or ready-state change.
type PlayerListUpdate struct {
	Players []domain.Player `json:"players"`
}

// GameConfig pushes the session parameters to a client.
type GameConfig struct {
	domain.GameConfig
}

// GameStart announces the transition out of the lobby.
type GameStart struct{}

// NewQuestion broadcasts the next question in the sequence.
type NewQuestion struct {
	domain.Question
}

// AnswerResult is unicast to a submitting player when the host runs
// with per-question correctness feedback enabled.
type AnswerResult struct {
	QuestionIndex int    `json:"questionIndex"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

// TimeUpdate broadcasts the remaining seconds for the current question.
type TimeUpdate struct {
	TimeRemaining int `json:"timeRemaining"`
}

// CalculatingResults announces the grace period between the last
// question and the final results.
type CalculatingResults struct{}

// GameEnd carries the complete per-player answer aggregate.
type GameEnd struct {
	AllAnswers []domain.PlayerAnswers `json:"allAnswers"`
}

// ServerStopped tells clients the session is over before their sockets
// close.
type ServerStopped struct {
	Reason string `json:"reason"`
}

// PlayerLeft names a player who disconnected mid-session.
type PlayerLeft struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// GetHostInfo is the discovery probe request.
type GetHostInfo struct{}

// HostInfo is the discovery response describing a joinable session.
type HostInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Port        int    `json:"port"`
	PlayerCount int    `json:"playerCount"`
}

func (JoinGame) Type() Type           { return TypeJoinGame }
func (PlayerReady) Type() Type        { return TypePlayerReady }
func (SubmitAnswer) Type() Type       { return TypeSubmitAnswer }
func (PlayerListUpdate) Type() Type   { return TypePlayerListUpdate }
func (GameConfig) Type() Type         { return TypeGameConfig }
func (GameStart) Type() Type          { return TypeGameStart }
func (NewQuestion) Type() Type        { return TypeNewQuestion }
func (AnswerResult) Type() Type       { return TypeAnswerResult }
func (TimeUpdate) Type() Type         { return TypeTimeUpdate }
func (CalculatingResults) Type() Type { return TypeCalculatingResults }
func (GameEnd) Type() Type            { return TypeGameEnd }
func (ServerStopped) Type() Type      { return TypeServerStopped }
func (PlayerLeft) Type() Type         { return TypePlayerLeft }
func (GetHostInfo) Type() Type        { return TypeGetHostInfo }
func (HostInfo) Type() Type           { return TypeHostInfo }
