package domain

// State is the session lifecycle vocabulary shared between host and
// clients.
type State string

const (
	StateMenu    State = "menu"    // Not in a session
	StateLobby   State = "lobby"   // Joined, waiting for everyone to be ready
	StatePlaying State = "playing" // Questions in flight
	StateEnded   State = "ended"   // Results delivered
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}
