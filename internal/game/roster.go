package game

import (
	"geoquiz/internal/domain"
)

// Roster is the ordered set of connected players in one session. Order
// is arrival order, significant for display only. At most one member
// is the host, always the first to join; host status never transfers.
type Roster struct {
	players []*domain.Player
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Join appends a player. The first player to join becomes the host and
// is ready immediately; later joiners start not ready.
func (r *Roster) Join(id, name string) *domain.Player {
	player := domain.NewPlayer(id, name, len(r.players) == 0)
	r.players = append(r.players, player)
	return player
}

// SetReady updates a player's ready state. Unknown ids are ignored.
func (r *Roster) SetReady(id string, ready bool) {
	for _, p := range r.players {
		if p.ID == id {
			p.IsReady = ready
			return
		}
	}
}

// Get returns the player with the given id, or nil.
func (r *Roster) Get(id string) *domain.Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Remove deletes a player from the roster and returns them, or nil if
// the id is unknown.
func (r *Roster) Remove(id string) *domain.Player {
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return p
		}
	}
	return nil
}

// AllReady reports whether every current member is ready. An empty
// roster is vacuously ready; callers guard against starting with zero
// players.
func (r *Roster) AllReady() bool {
	for _, p := range r.players {
		if !p.IsReady {
			return false
		}
	}
	return true
}

// Len returns the number of connected players.
func (r *Roster) Len() int {
	return len(r.players)
}

// Players returns the roster in arrival order as values, safe to hand
// to the codec for broadcasting.
func (r *Roster) Players() []domain.Player {
	players := make([]domain.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, *p)
	}
	return players
}
