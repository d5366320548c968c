package domain

// Player represents a connected player in a session
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsReady bool   `json:"isReady"`
	IsHost  bool   `json:"isHost"`
}

// NewPlayer creates a player. The first player to join a session is the
// host and starts ready; everyone else must toggle ready themselves.
func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		IsReady: isHost,
		IsHost:  isHost,
	}
}
