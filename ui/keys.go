package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"termoca/config"
	"termoca/engine"
)

// CommandForKey maps a key event to a turn driver command. Letters match
// regardless of case; Ctrl-C always quits.
func CommandForKey(event *tcell.EventKey, keys config.ConfigKeys) engine.Command {
	switch event.Key() {
	case tcell.KeyCtrlC:
		return engine.CommandQuit
	case tcell.KeyRune:
		r := unicode.ToLower(event.Rune())
		switch r {
		case unicode.ToLower(keys.Quit):
			return engine.CommandQuit
		case unicode.ToLower(keys.Roll):
			return engine.CommandAdvance
		}
	}
	return engine.CommandNone
}
