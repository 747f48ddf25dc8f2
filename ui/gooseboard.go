// Package ui draws the goose board and game information with tview.
package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termoca/board"
	"termoca/config"
	"termoca/types"
)

// Minimum cell size in characters: a border on each side plus one line of content.
const (
	minCellWidth  = 4
	minCellHeight = 3
)

type borderRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	plainBorder   = borderRunes{'─', '│', '┌', '┐', '└', '┘'}
	thickBorder   = borderRunes{'━', '┃', '┏', '┓', '┗', '┛'}
	doubleBorder  = borderRunes{'═', '║', '╔', '╗', '╚', '╝'}
	roundedBorder = borderRunes{'─', '│', '╭', '╮', '╰', '╯'}
)

// BoardUI draws the 64 cells of the track as an 8x8 grid.
type BoardUI struct {
	Box   *tview.Box
	State *types.GameState
	cfg   *config.Config

	kindStyles map[board.Kind]tcell.Style
	textStyle  tcell.Style
	turnStyle  tcell.Style
}

// NewBoard creates a board view. SetState must be called before it is drawn.
func NewBoard(c *config.Config) *BoardUI {
	b := &BoardUI{
		Box: tview.NewBox(),
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	return b
}

// SetState points the board at the game state it renders.
func (b *BoardUI) SetState(state *types.GameState) {
	b.State = state
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.kindStyles = make(map[board.Kind]tcell.Style, len(board.Kinds))
	for _, kind := range board.Kinds {
		b.kindStyles[kind] = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.KindColor(kind)))
	}
	b.textStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.TextColor))
	b.turnStyle = b.textStyle.Foreground(tcell.PaletteColor(c.Theme.Colors.TurnColor)).Bold(true)
	b.cfg = c
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if b.State == nil {
		return x, y, width, height
	}
	cellW, cellH := width/board.Columns, height/board.Rows
	if cellW < minCellWidth || cellH < minCellHeight {
		drawText(screen, x, y, "Terminal demasiado pequeña", b.textStyle)
		return x, y, width, height
	}

	for index := 0; index < board.Size; index++ {
		row, col := board.Position(index)
		b.drawCell(screen, index, x+col*cellW, y+row*cellH, cellW, cellH)
	}
	return x, y, width, height
}

// drawCell draws one cell: a border colored by kind, the label on the top
// edge and the names of the players standing on it.
func (b *BoardUI) drawCell(s tcell.Screen, index, l, t, w, h int) {
	kind, label := board.Classify(index)
	style := b.kindStyles[kind]
	runes := b.border(kind)

	right, bottom := l+w-1, t+h-1
	for col := l + 1; col < right; col++ {
		s.SetContent(col, t, runes.h, nil, style)
		s.SetContent(col, bottom, runes.h, nil, style)
	}
	for row := t + 1; row < bottom; row++ {
		s.SetContent(l, row, runes.v, nil, style)
		s.SetContent(right, row, runes.v, nil, style)
		for col := l + 1; col < right; col++ {
			s.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
	s.SetContent(l, t, runes.tl, nil, style)
	s.SetContent(right, t, runes.tr, nil, style)
	s.SetContent(l, bottom, runes.bl, nil, style)
	s.SetContent(right, bottom, runes.br, nil, style)

	inner := w - 2
	drawText(s, l+1, t, truncate(label, inner), style)

	current := b.State.CurrentPlayer().Name
	for i, line := range packNames(b.State.PlayersAt(index), inner) {
		row := t + 1 + i
		if row >= bottom {
			break
		}
		col := l + 1 + (inner-len([]rune(line)))/2
		for _, name := range strings.Fields(line) {
			nameStyle := b.textStyle
			if name == current && !b.State.Finished {
				nameStyle = b.turnStyle
			}
			drawText(s, col, row, name, nameStyle)
			col += len([]rune(name)) + 1
		}
	}
}

func (b *BoardUI) border(kind board.Kind) borderRunes {
	if !b.cfg.Theme.KindBorders {
		return plainBorder
	}
	switch kind {
	case board.Start:
		return thickBorder
	case board.End:
		return doubleBorder
	case board.Setback:
		return roundedBorder
	}
	return plainBorder
}

// packNames joins names with spaces into lines no wider than width.
func packNames(names []string, width int) []string {
	var lines []string
	var cur string
	for _, name := range names {
		switch {
		case cur == "":
			cur = name
		case len([]rune(cur))+1+len([]rune(name)) <= width:
			cur += " " + name
		default:
			lines = append(lines, cur)
			cur = name
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width < 0 {
		width = 0
	}
	if len(r) > width {
		return string(r[:width])
	}
	return s
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
