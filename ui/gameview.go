package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termoca/config"
	"termoca/engine"
	"termoca/types"
)

// GameView holds the game screen and the win screen and keeps them in step
// with a game engine.
type GameView struct {
	Pages  *tview.Pages
	board  *BoardUI
	panel  *GameInfoPanel
	winner *WinnerView
	cfg    *config.Config
	eng    engine.GameEngine
}

// NewGameView builds the board, info panel and win screen.
func NewGameView(c *config.Config) *GameView {
	v := &GameView{
		Pages:  tview.NewPages(),
		board:  NewBoard(c),
		panel:  NewGameInfoPanel(),
		winner: NewWinnerView(c),
		cfg:    c,
	}
	v.Pages.AddPage("gameview", CreateGameLayout(v.board, v.panel, NewHint(c)), true, true)
	v.Pages.AddPage("winner", v.winner.TextView(), true, false)
	return v
}

// ConnectEngine points the view at e and refreshes it after every turn.
func (v *GameView) ConnectEngine(e engine.GameEngine) {
	v.eng = e

	e.OnTurn(func(state *types.GameState) {
		v.panel.SetState(state)
	})
	e.OnGameEnd(func(winner string) {
		v.panel.SetState(e.State())
		v.winner.SetWinner(winner)
		v.Pages.SwitchToPage("winner")
	})

	v.board.SetState(e.State())
	v.panel.SetState(e.State())
}

// HandleKey feeds a key to the engine. quit is true when the program should
// stop; a nil event means the key was consumed.
func (v *GameView) HandleKey(event *tcell.EventKey) (ev *tcell.EventKey, quit bool) {
	if v.eng == nil {
		return event, false
	}
	command := CommandForKey(event, v.cfg.Keys)
	if v.eng.Handle(command) {
		return nil, true
	}
	if command != engine.CommandNone {
		return nil, false
	}
	return event, false
}

// ShowingWinner reports whether the win screen is in front.
func (v *GameView) ShowingWinner() bool {
	name, _ := v.Pages.GetFrontPage()
	return name == "winner"
}
