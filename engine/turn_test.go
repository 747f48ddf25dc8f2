package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termoca/board"
	"termoca/types"
)

func TestTurnRotation(t *testing.T) {
	s := types.NewGameState()
	for i := 0; i < types.PlayerCount; i++ {
		assert.Equal(t, i, s.CurrentTurn)
		TakeTurn(s, 1)
	}
	assert.Equal(t, 0, s.CurrentTurn)
	for _, p := range s.Players {
		assert.Equal(t, 1, p.Position)
	}
}

func TestOvershootKeepsPosition(t *testing.T) {
	s := types.NewGameState()
	s.Players[0].Position = 60

	TakeTurn(s, 5)

	assert.Equal(t, 60, s.Players[0].Position)
	assert.Equal(t, 1, s.CurrentTurn)
	require.Len(t, s.Log, 1)
	assert.Equal(t, "El J1 acaba de sacar el numero 5. Pero necesita un 3 para ganar.", s.Log[0])
	assert.False(t, s.Finished)
}

func TestWinSkipsSpecialCells(t *testing.T) {
	s := types.NewGameState()
	s.CurrentTurn = 2
	s.Players[2].Position = 61

	TakeTurn(s, 2)

	assert.Equal(t, board.EndCell, s.Players[2].Position)
	assert.True(t, s.Finished)
	assert.Equal(t, "J3", s.Winner)
	assert.Equal(t, 2, s.CurrentTurn, "turn does not rotate after a win")
	assert.Equal(t, []string{
		"El J3 acaba de sacar el numero 2.",
		"El jugador J3 ganó.",
	}, s.Log)
}

func TestSetbackCell(t *testing.T) {
	s := types.NewGameState()
	s.Players[0].Position = 8

	TakeTurn(s, 2)

	assert.Equal(t, 8, s.Players[0].Position)
	assert.Equal(t, []string{
		"El J1 acaba de sacar el numero 2.",
		"El J1 esta en un casillero de castigo. Retrocede 2 casilleros.",
	}, s.Log)
}

func TestBonusCell(t *testing.T) {
	s := types.NewGameState()
	s.Players[0].Position = 5

	TakeTurn(s, 2)

	assert.Equal(t, 9, s.Players[0].Position)
	assert.Equal(t, []string{
		"El J1 acaba de sacar el numero 2.",
		"El J1 esta en un casillero de suerte. Avanza 2 casilleros.",
	}, s.Log)
}

func TestSetbackWinsOverBonus(t *testing.T) {
	s := types.NewGameState()
	s.Players[0].Position = 30

	TakeTurn(s, 5) // lands on 35, a multiple of both 5 and 7

	assert.Equal(t, 33, s.Players[0].Position)
	assert.Len(t, s.Log, 2)
}

func TestBonusNotChained(t *testing.T) {
	s := types.NewGameState()
	s.Players[0].Position = 25

	TakeTurn(s, 3) // 28 is a bonus cell, the bonus lands on 30 which is not re-checked

	assert.Equal(t, 30, s.Players[0].Position)
	assert.Len(t, s.Log, 2)
}

func TestOnlyCurrentPlayerMoves(t *testing.T) {
	s := types.NewGameState()
	s.CurrentTurn = 1

	TakeTurn(s, 4)

	assert.Equal(t, 0, s.Players[0].Position)
	assert.Equal(t, 4, s.Players[1].Position)
	assert.Equal(t, 0, s.Players[2].Position)
	assert.Equal(t, 0, s.Players[3].Position)
}

// Every reachable start position and roll applies at most one adjustment.
func TestAtMostOneAdjustment(t *testing.T) {
	for pos := 0; pos < board.EndCell; pos++ {
		for roll := 1; roll <= Faces; roll++ {
			s := types.NewGameState()
			s.Players[0].Position = pos
			TakeTurn(s, roll)

			assert.LessOrEqual(t, len(s.Log), 2, "pos %d roll %d", pos, roll)
			final := s.Players[0].Position
			target := pos + roll
			switch {
			case target > board.EndCell:
				assert.Equal(t, pos, final)
			case target == board.EndCell:
				assert.Equal(t, board.EndCell, final)
			default:
				diff := final - target
				assert.Contains(t, []int{-SetbackCells, 0, BonusCells}, diff, "pos %d roll %d", pos, roll)
			}
		}
	}
}

func TestLogOrder(t *testing.T) {
	s := types.NewGameState()
	rolls := []int{1, 1, 1, 1, 1, 1}
	for _, r := range rolls {
		TakeTurn(s, r)
	}
	require.Len(t, s.Log, len(rolls))
	reversed := s.ReversedLog()
	assert.Equal(t, s.Log[len(s.Log)-1], reversed[0])
	assert.Equal(t, s.Log[0], reversed[len(reversed)-1])
}
