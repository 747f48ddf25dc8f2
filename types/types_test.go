package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	s := NewGameState()
	require.Len(t, s.Players, PlayerCount)
	for i, p := range s.Players {
		assert.Equal(t, DefaultPlayerNames[i], p.Name)
		assert.Equal(t, 0, p.Position)
	}
	assert.Equal(t, 0, s.CurrentTurn)
	assert.Empty(t, s.Log)
	assert.False(t, s.Finished)
	assert.Empty(t, s.Winner)
}

func TestCurrentPlayerIsMutable(t *testing.T) {
	s := NewGameState()
	s.CurrentTurn = 2
	s.CurrentPlayer().Position = 9
	assert.Equal(t, 9, s.Players[2].Position)
}

func TestPlayersAt(t *testing.T) {
	s := NewGameState()
	s.Players[1].Position = 4
	s.Players[3].Position = 4
	assert.Equal(t, []string{"J1", "J3"}, s.PlayersAt(0))
	assert.Equal(t, []string{"J2", "J4"}, s.PlayersAt(4))
	assert.Nil(t, s.PlayersAt(63))
}

func TestReversedLog(t *testing.T) {
	s := NewGameState()
	s.AddLog("first")
	s.AddLog("second")
	s.AddLog("third")

	assert.Equal(t, []string{"third", "second", "first"}, s.ReversedLog())
	// Stored order is unchanged.
	assert.Equal(t, []string{"first", "second", "third"}, s.Log)
}

func TestReversedLogEmpty(t *testing.T) {
	s := NewGameState()
	assert.Empty(t, s.ReversedLog())
}
