// Package flow tracks which screen a frontend shows between sessions.
package flow

import (
	"github.com/Garsondee/Fire-Sense/internal/engine"
)

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenPlaying
	ScreenWon
	ScreenLost
)

var screenNames = [...]string{"menu", "instructions", "playing", "won", "lost"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Flow is the navigation state machine. It never touches the engine; the
// frontend starts and stops sessions when the screen changes.
type Flow struct {
	screen Screen
	level  engine.Level
	score  int
}

func New() *Flow {
	return &Flow{screen: ScreenMenu, level: engine.LevelManual}
}

func (f *Flow) Screen() Screen { return f.screen }
func (f *Flow) Level() engine.Level { return f.level }
func (f *Flow) Score() int { return f.score }

// Start enters Playing on level and resets the score.
func (f *Flow) Start(level engine.Level) {
	f.level = level
	f.score = 0
	f.screen = ScreenPlaying
}

// SetScore records the running score so the result screens can show it.
func (f *Flow) SetScore(score int) {
	if f.screen == ScreenPlaying {
		f.score = score
	}
}

func (f *Flow) Win(score int) {
	if f.screen != ScreenPlaying {
		return
	}
	f.score = score
	f.screen = ScreenWon
}

func (f *Flow) Lose() {
	if f.screen != ScreenPlaying {
		return
	}
	f.screen = ScreenLost
}

// NextLevel returns the level the result screen's primary action starts:
// level 2 after a level 1 win, back to level 1 after a level 2 win, and a
// retry of the same level after a loss. ok is false outside result screens.
func (f *Flow) NextLevel() (level engine.Level, ok bool) {
	switch f.screen {
	case ScreenWon:
		if f.level == engine.LevelManual {
			return engine.LevelSuppression, true
		}
		return engine.LevelManual, true
	case ScreenLost:
		return f.level, true
	}
	return 0, false
}

// Advance applies NextLevel and starts it.
func (f *Flow) Advance() (engine.Level, bool) {
	level, ok := f.NextLevel()
	if ok {
		f.Start(level)
	}
	return level, ok
}

func (f *Flow) Menu() {
	f.screen = ScreenMenu
}

// Instructions is only reachable from the menu.
func (f *Flow) Instructions() {
	if f.screen == ScreenMenu {
		f.screen = ScreenInstructions
	}
}

// PrimaryLabel names the result screen's main action.
func (f *Flow) PrimaryLabel() string {
	switch f.screen {
	case ScreenWon:
		if f.level == engine.LevelManual {
			return "Level 2"
		}
		return "Play again"
	case ScreenLost:
		return "Try again"
	}
	return ""
}

// Section is one block of the instructions screen.
type Section struct {
	Title string
	Lines []string
}

// InstructionLines is the how-to-play text for both levels.
var InstructionLines = []Section{
	{
		Title: "Level 1 - Manual extinguishing",
		Lines: []string{
			"Fires appear at random spots on the scene",
			"Click a fire repeatedly to put it out",
			"Left alone a fire grows and damages the vehicle",
			"Put out 8 fires to win",
			"If the vehicle's health drops to 0 you lose",
		},
	},
	{
		Title: "Level 2 - Suppression system",
		Lines: []string{
			"The vehicle carries a fire suppression system",
			"When a fire appears the suppress button lights up",
			"Press it and the fire goes out instantly",
			"Ignore it and the system fires by itself after 30 seconds",
			"Meanwhile the fire keeps damaging the vehicle",
		},
	},
}
