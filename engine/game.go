package engine

import (
	log "github.com/sirupsen/logrus"

	"termoca/types"
)

// Phase is the state of the turn driver.
type Phase int

const (
	Playing Phase = iota
	Finished
)

func (p Phase) String() string {
	if p == Finished {
		return "finished"
	}
	return "playing"
}

// Command is an input understood by the turn driver.
type Command int

const (
	CommandNone Command = iota
	CommandAdvance
	CommandQuit
)

// Recorder receives every log message of a game as it is produced.
type Recorder interface {
	Append(msg string) error
	Finish(winner string) error
	Close() error
}

// Game owns the game state and moves it forward one command at a time.
// It is driven from a single goroutine and does no locking.
type Game struct {
	state *types.GameState
	phase Phase
	die   Die
	rec   Recorder
	log   log.FieldLogger

	turnCallback func(state *types.GameState)
	endCallback  func(winner string)
}

// NewGame creates a game in the Playing phase with every player on the start cell.
func NewGame(die Die, logger log.FieldLogger) *Game {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Game{
		state: types.NewGameState(),
		phase: Playing,
		die:   die,
		log:   logger,
	}
}

// SetRecorder attaches a transcript recorder. Messages already in the log are
// written to it straight away.
func (g *Game) SetRecorder(r Recorder) {
	g.rec = r
	g.record(g.state.Log)
}

func (g *Game) State() *types.GameState {
	return g.state
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) OnTurn(f func(state *types.GameState)) {
	g.turnCallback = f
}

func (g *Game) OnGameEnd(f func(winner string)) {
	g.endCallback = f
}

// Handle applies cmd. Advance is ignored once the game is finished, so the
// win screen stays up until the quit command arrives.
func (g *Game) Handle(cmd Command) bool {
	switch cmd {
	case CommandQuit:
		g.log.WithField("phase", g.phase).Info("quit requested")
		return true
	case CommandAdvance:
		if g.phase == Finished {
			return false
		}
		g.advance()
	}
	return false
}

func (g *Game) advance() {
	turn := g.state.CurrentTurn
	player := g.state.CurrentPlayer()
	name, from := player.Name, player.Position
	logged := len(g.state.Log)

	roll := g.die.Roll()
	TakeTurn(g.state, roll)

	g.log.WithFields(log.Fields{
		"turn":   turn,
		"player": name,
		"roll":   roll,
		"from":   from,
		"to":     g.state.Players[turn].Position,
	}).Debug("turn played")
	g.record(g.state.Log[logged:])

	if g.state.Finished {
		g.phase = Finished
		g.log.WithField("winner", g.state.Winner).Info("game finished")
		if g.rec != nil {
			if err := g.rec.Finish(g.state.Winner); err != nil {
				g.dropRecorder(err)
			}
		}
		if g.endCallback != nil {
			g.endCallback(g.state.Winner)
		}
		return
	}
	if g.turnCallback != nil {
		g.turnCallback(g.state)
	}
}

func (g *Game) record(msgs []string) {
	if g.rec == nil {
		return
	}
	for _, msg := range msgs {
		if err := g.rec.Append(msg); err != nil {
			g.dropRecorder(err)
			return
		}
	}
}

// dropRecorder stops recording after a write error. The game carries on.
func (g *Game) dropRecorder(err error) {
	g.log.WithError(err).Warn("transcript disabled")
	if cerr := g.rec.Close(); cerr != nil {
		g.log.WithError(cerr).Warn("closing transcript")
	}
	g.rec = nil
}

func (g *Game) Close() {
	if g.rec == nil {
		return
	}
	if err := g.rec.Close(); err != nil {
		g.log.WithError(err).Warn("closing transcript")
	}
	g.rec = nil
}

var _ GameEngine = (*Game)(nil)
