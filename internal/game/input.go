package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Fire-Sense/internal/engine"
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
	actionCopyReport
	actionToggleDetail
)

// watchedKeys are polled every frame for edge-triggered presses.
var watchedKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.KeyI, ebiten.KeySpace, ebiten.KeyS,
	ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyC, ebiten.KeyTab,
}

// actionFor maps a key press to an action for the current screen.
func actionFor(screen flow.Screen, key ebiten.Key) action {
	switch screen {
	case flow.ScreenMenu:
		switch key {
		case ebiten.Key1:
			return actionStartManual
		case ebiten.Key2:
			return actionStartSuppression
		case ebiten.KeyI:
			return actionInstructions
		}
	case flow.ScreenInstructions:
		switch key {
		case ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyI:
			return actionMenu
		}
	case flow.ScreenPlaying:
		switch key {
		case ebiten.KeySpace, ebiten.KeyS:
			return actionSuppress
		case ebiten.KeyEscape:
			return actionMenu
		case ebiten.KeyC:
			return actionCopyReport
		case ebiten.KeyTab:
			return actionToggleDetail
		}
	case flow.ScreenWon, flow.ScreenLost:
		switch key {
		case ebiten.KeyEnter:
			return actionNext
		case ebiten.KeyEscape:
			return actionMenu
		case ebiten.KeyC:
			return actionCopyReport
		}
	}
	return actionNone
}

// handleInput polls keys and the left mouse button, acting on press edges.
func (g *Game) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(watchedKeys))
	for _, k := range watchedKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			g.apply(actionFor(g.flow.Screen(), k))
		}
	}
	g.prevKeys = currentKeys

	mx, my := ebiten.CursorPosition()
	if g.flow.Screen() == flow.ScreenPlaying {
		g.inspector.update(g.scene, g.engine.Snapshot(), mx, my)
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft {
		g.handleClick(mx, my)
	}
	g.prevMouseLeft = left
}

func (g *Game) handleClick(mx, my int) {
	if g.flow.Screen() != flow.ScreenPlaying {
		if act, ok := buttonAt(g.buttons(), mx, my); ok {
			g.apply(act)
		}
		return
	}
	if btn, ok := g.suppressButton(); ok && btn.hit(mx, my) {
		g.apply(actionSuppress)
		return
	}
	sn := g.engine.Snapshot()
	if id, ok := pickFire(g.scene, sn.Fires, sn.MaxIntensity, mx, my); ok {
		g.engine.OnFireClicked(id)
	}
}

func (g *Game) apply(act action) {
	switch act {
	case actionStartManual:
		g.start(engine.LevelManual)
	case actionStartSuppression:
		g.start(engine.LevelSuppression)
	case actionInstructions:
		g.flow.Instructions()
	case actionMenu:
		g.engine.Stop()
		g.flow.Menu()
	case actionSuppress:
		g.engine.SuppressActive()
	case actionNext:
		if level, ok := g.flow.NextLevel(); ok {
			g.start(level)
		}
	case actionCopyReport:
		g.copyReport()
	case actionToggleDetail:
		g.inspector.detail = !g.inspector.detail
	}
}
