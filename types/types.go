// Package types contains shared data structures for termoca.
package types

// PlayerCount is the fixed number of players in a game.
const PlayerCount = 4

// DefaultPlayerNames are the names given to the players, in turn order.
var DefaultPlayerNames = [PlayerCount]string{"J1", "J2", "J3", "J4"}

// Player is a single token on the track.
type Player struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// GameState is the complete state of a game.
// Players are kept in turn order; Log holds turn messages in the order they happened.
type GameState struct {
	Players     []Player `json:"players"`
	CurrentTurn int      `json:"current_turn"`
	Log         []string `json:"log"`
	Finished    bool     `json:"finished"`
	Winner      string   `json:"winner"` // only meaningful once Finished is set
}

// NewGameState creates a game with all players on the start cell.
func NewGameState() *GameState {
	players := make([]Player, PlayerCount)
	for i, name := range DefaultPlayerNames {
		players[i] = Player{Name: name}
	}
	return &GameState{
		Players: players,
		Log:     []string{},
	}
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() *Player {
	return &s.Players[s.CurrentTurn]
}

// PlayersAt returns the names of the players standing on index, in turn order.
func (s *GameState) PlayersAt(index int) []string {
	var names []string
	for _, p := range s.Players {
		if p.Position == index {
			names = append(names, p.Name)
		}
	}
	return names
}

// AddLog appends a message to the log.
func (s *GameState) AddLog(msg string) {
	s.Log = append(s.Log, msg)
}

// ReversedLog returns a copy of the log with the most recent message first.
// The stored log is left untouched.
func (s *GameState) ReversedLog() []string {
	out := make([]string, len(s.Log))
	for i, msg := range s.Log {
		out[len(s.Log)-1-i] = msg
	}
	return out
}
