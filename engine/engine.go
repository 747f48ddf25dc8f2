// Package engine implements the goose game rules and the turn driver around them.
package engine

import "termoca/types"

// GameEngine is what the terminal UI drives. *Game implements it.
type GameEngine interface {
	// State returns the live game state. Callers must treat it as read-only.
	State() *types.GameState

	// Phase reports whether the game is still being played.
	Phase() Phase

	// Handle applies one input command. It returns true when the command asks
	// the program to terminate.
	Handle(cmd Command) bool

	// OnTurn registers a callback run after every turn that did not end the game.
	OnTurn(func(state *types.GameState))

	// OnGameEnd registers a callback run once, when a player reaches the last cell.
	OnGameEnd(func(winner string))

	// Close releases the transcript recorder, if any.
	Close()
}

// GameConfig holds the options for starting a new game.
type GameConfig struct {
	Seed   int64 // 0 picks a time-based seed
	Record bool  // write a transcript of the log to the history dir
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() GameConfig {
	return GameConfig{
		Seed:   0,
		Record: false,
	}
}
