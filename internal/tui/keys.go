package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Fire-Sense/internal/flow"
)

type action int

const (
	actionNone action = iota
	actionStartManual
	actionStartSuppression
	actionInstructions
	actionMenu
	actionSuppress
	actionNext
	actionQuit
)

// keyAction maps a key press to an action for the current screen.
func keyAction(screen flow.Screen, key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape:
		if screen == flow.ScreenMenu {
			return actionQuit
		}
		return actionMenu
	case tcell.KeyEnter:
		switch screen {
		case flow.ScreenWon, flow.ScreenLost:
			return actionNext
		case flow.ScreenInstructions:
			return actionMenu
		}
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch screen {
	case flow.ScreenMenu:
		switch r {
		case '1':
			return actionStartManual
		case '2':
			return actionStartSuppression
		case 'i', 'I':
			return actionInstructions
		case 'q', 'Q':
			return actionQuit
		}
	case flow.ScreenInstructions:
		if r == 'i' || r == 'I' {
			return actionMenu
		}
	case flow.ScreenPlaying:
		if r == 's' || r == 'S' || r == ' ' {
			return actionSuppress
		}
	case flow.ScreenWon, flow.ScreenLost:
		if r == 'q' || r == 'Q' {
			return actionMenu
		}
	}
	return actionNone
}
