package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette used outside the board itself.
var MenuColors = struct {
	Border tcell.Color // Muted blue-gray for borders
	Title  tcell.Color // Bright white for title
	Label  tcell.Color // Light gray for labels
	Hint   tcell.Color // Dim gray for hints
}{
	Border: tcell.PaletteColor(60),  // Muted blue-gray
	Title:  tcell.PaletteColor(255), // Bright white
	Label:  tcell.PaletteColor(250), // Light gray
	Hint:   tcell.PaletteColor(245), // Dim gray
}
