package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termoca/board"
	"termoca/config"
	"termoca/types"
)

const title = "El juego de la OCA"

// GameInfoPanel shows whose turn it is, where everyone stands and the turn log.
type GameInfoPanel struct {
	box   *tview.TextView
	state *types.GameState
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(true)
	panel.box.SetTitle(" Información ")
	panel.box.SetTitleAlign(tview.AlignLeft)
	panel.box.SetTextAlign(tview.AlignLeft)
	panel.box.SetTextColor(MenuColors.Label)
	panel.box.SetBorderColor(MenuColors.Border)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with the current game state.
func (p *GameInfoPanel) SetState(state *types.GameState) {
	p.state = state
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.state == nil {
		p.box.SetText("")
		return
	}
	p.box.SetText(p.text())
	p.box.ScrollToBeginning()
}

// text renders the panel contents. The log is shown newest first.
func (p *GameInfoPanel) text() string {
	var b strings.Builder

	if p.state.Finished {
		b.WriteString(fmt.Sprintf("[yellow::b]Ganó %s[-:-:-]\n", tview.Escape(p.state.Winner)))
	} else {
		b.WriteString(fmt.Sprintf("[white::b]Turno:[-:-:-] %s\n", tview.Escape(p.state.CurrentPlayer().Name)))
	}
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	for _, pl := range p.state.Players {
		_, label := board.Classify(pl.Position)
		b.WriteString(fmt.Sprintf("[white]%s[-] %s\n", tview.Escape(pl.Name), label))
	}

	if len(p.state.Log) > 0 {
		b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		for _, msg := range p.state.ReversedLog() {
			b.WriteString(tview.Escape(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// NewHint creates the header line naming the game and its keys.
func NewHint(c *config.Config) *tview.TextView {
	hint := tview.NewTextView()
	hint.SetDynamicColors(true)
	hint.SetTextAlign(tview.AlignCenter)
	hint.SetTextColor(MenuColors.Hint)
	hint.SetText(hintText(c.Keys))
	return hint
}

func hintText(keys config.ConfigKeys) string {
	return fmt.Sprintf("[dimgray]Presione[-] %c [dimgray]para salir[-]     [white::b]%s[-:-:-]     [dimgray]Presione[-] %c [dimgray]para utilizar el turno[-]",
		keys.Quit, title, keys.Roll)
}

// CreateGameLayout creates the main game layout: hint on top, board with the
// info panel beside it.
func CreateGameLayout(board *BoardUI, panel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 3, true)
	boardRow.AddItem(panel.Box(), 0, 1, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(hint, 1, 0, false)
	mainFlex.AddItem(boardRow, 0, 1, true)

	mainFlex.SetBorder(true)
	mainFlex.SetBorderColor(MenuColors.Border)
	mainFlex.SetTitle(" " + title + " ")
	return mainFlex
}
