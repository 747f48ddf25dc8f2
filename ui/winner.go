package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termoca/config"
)

// WinnerView is the screen shown once the game has a winner.
type WinnerView struct {
	view *tview.TextView
}

func NewWinnerView(c *config.Config) *WinnerView {
	view := tview.NewTextView()
	view.SetBorder(true)
	view.SetTitle(fmt.Sprintf(" Ganador   Presione %c para salir ", c.Keys.Quit))
	view.SetTitleAlign(tview.AlignCenter)
	view.SetTextAlign(tview.AlignCenter)
	view.SetTextColor(MenuColors.Title)
	view.SetBackgroundColor(tcell.ColorNavy)
	return &WinnerView{view: view}
}

// SetWinner sets the name shown on the screen.
func (w *WinnerView) SetWinner(name string) {
	w.view.SetText(winnerText(name))
}

func (w *WinnerView) TextView() *tview.TextView {
	return w.view
}

func winnerText(name string) string {
	return fmt.Sprintf("\n\nGanó el jugador %s", name)
}
