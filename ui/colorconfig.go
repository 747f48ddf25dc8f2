package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termoca/board"
	"termoca/config"
	"termoca/types"
)

// ColorConfigUI lets the player pick a border color for each kind of cell,
// with a live preview of the cells.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	draft     config.Config
	onDone    func(err error)
	save      func() error

	kind       int  // index into board.Kinds being edited
	populating bool // list callbacks are ignored while the list is rebuilt
}

// Palette entries offered for cell borders.
var cellColors = []struct {
	code int
	name string
}{
	{2, "Green"},
	{10, "Lime"},
	{9, "Red"},
	{203, "Light Red"},
	{11, "Yellow"},
	{214, "Orange Gold"},
	{14, "Cyan"},
	{109, "Steel Blue"},
	{12, "Blue"},
	{13, "Fuchsia"},
	{140, "Lavender"},
	{250, "Gray"},
	{15, "White"},
}

// Sample cells drawn in the preview, one per kind.
var previewCells = []int{board.StartCell, 1, 5, 7, board.EndCell}

// NewColorConfig creates the color configuration screen. onDone is called
// after the last kind is confirmed, with the result of saving the config.
func NewColorConfig(cfg *config.Config, onDone func(err error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		draft:  *cfg,
		onDone: onDone,
		save:   cfg.Save,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if !cc.populating && index >= 0 && index < len(cellColors) {
			cc.draft.SetKindColor(cc.currentKind(), cellColors[index].code)
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Vista previa ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) currentKind() board.Kind {
	return board.Kinds[cc.kind]
}

// apply confirms the draft color of the current kind and moves to the next
// one. After the last kind the config is saved.
func (cc *ColorConfigUI) apply() {
	kind := cc.currentKind()
	cc.cfg.SetKindColor(kind, cc.draft.KindColor(kind))
	if cc.kind < len(board.Kinds)-1 {
		cc.ToggleMode()
		return
	}
	err := cc.save()
	if cc.onDone != nil {
		cc.onDone(err)
	}
}

func (cc *ColorConfigUI) populateColorList() {
	cc.populating = true
	defer func() { cc.populating = false }()

	cc.colorList.Clear()
	kind := cc.currentKind()
	cc.colorList.SetTitle(fmt.Sprintf(" Color %s (Tab: siguiente) ", kind))
	for i, c := range cellColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cellColors {
		if c.code == cc.draft.KindColor(kind) {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const cellW, cellH = 12, 4
	if width < cellW*len(previewCells)+2 || height < cellH+2 {
		return x, y, width, height
	}

	b := NewBoard(&cc.draft)
	b.SetState(types.NewGameState())
	for i, index := range previewCells {
		b.drawCell(screen, index, x+1+i*cellW, y+1, cellW, cellH)
	}

	info := fmt.Sprintf("Editando: %s", cc.currentKind())
	drawText(screen, x+1, y+cellH+2, truncate(info, width-2), tcell.StyleDefault)
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches to the next cell kind, wrapping after the last.
func (cc *ColorConfigUI) ToggleMode() {
	cc.kind = (cc.kind + 1) % len(board.Kinds)
	cc.populateColorList()
}
