package engine

import (
	"fmt"

	"termoca/board"
	"termoca/types"
)

const (
	// SetbackCells is how far a player moves back after landing on a setback cell.
	SetbackCells = 2
	// BonusCells is how far a player moves forward after landing on a bonus cell.
	BonusCells = 2
)

const (
	msgRoll      = "El %s acaba de sacar el numero %d."
	msgOvershoot = "El %s acaba de sacar el numero %d. Pero necesita un %d para ganar."
	msgWin       = "El jugador %s ganó."
	msgSetback   = "El %s esta en un casillero de castigo. Retrocede %d casilleros."
	msgBonus     = "El %s esta en un casillero de suerte. Avanza %d casilleros."
)

// TakeTurn plays the current player's turn with the given die roll.
//
// roll must be in [1,6] and state must not be finished; neither is checked.
// A roll that would pass the last cell leaves the player where they are.
// Reaching the last cell exactly ends the game and skips the special cell
// check and the turn rotation. Otherwise a setback or bonus cell (setback
// first, never both) moves the player once more, and the turn passes on.
func TakeTurn(state *types.GameState, roll int) {
	player := state.CurrentPlayer()

	target := player.Position + roll
	if target > board.EndCell {
		state.AddLog(fmt.Sprintf(msgOvershoot, player.Name, roll, board.EndCell-player.Position))
	} else {
		player.Position = target
		state.AddLog(fmt.Sprintf(msgRoll, player.Name, roll))

		if player.Position == board.EndCell {
			state.Winner = player.Name
			state.AddLog(fmt.Sprintf(msgWin, player.Name))
			state.Finished = true
			return
		}

		if player.Position%board.SetbackEvery == 0 {
			player.Position -= SetbackCells
			state.AddLog(fmt.Sprintf(msgSetback, player.Name, SetbackCells))
		} else if player.Position%board.BonusEvery == 0 {
			player.Position += BonusCells
			state.AddLog(fmt.Sprintf(msgBonus, player.Name, BonusCells))
		}
	}

	state.CurrentTurn = (state.CurrentTurn + 1) % len(state.Players)
}
