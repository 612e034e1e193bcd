// Package tui is the terminal frontend: the same engine drawn with tcell cells.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/flow"
	"github.com/Garsondee/Fire-Sense/internal/sound"
)

const (
	defaultFrameRate = 30
	feedLines        = 6
)

// Config selects the terminal frontend's behaviour.
type Config struct {
	Level     engine.Level // 0 opens the menu
	FrameRate int
	Seed      int64
	Player    *sound.Player // nil plays nothing
	Logger    *log.Logger
}

// App owns the screen and the engine. Everything but PollEvent runs on the
// goroutine that called Run.
type App struct {
	screen    tcell.Screen
	engine    *engine.Engine
	flow      *flow.Flow
	player    *sound.Player
	logger    *log.Logger
	frameRate int

	width, height int
	feed          []string
	mouseDown     bool
}

// New wraps an initialised screen.
func New(screen tcell.Screen, cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fr := cfg.FrameRate
	if fr <= 0 {
		fr = defaultFrameRate
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := &App{
		screen:    screen,
		flow:      flow.New(),
		player:    cfg.Player,
		logger:    logger,
		frameRate: fr,
	}
	a.engine = engine.New(engine.WithLogger(logger), engine.WithSeed(seed), engine.WithHooks(engine.Hooks{
		OnEvent: a.onEvent,
		OnScore: a.flow.SetScore,
		OnWin:   a.flow.Win,
		OnLose:  a.flow.Lose,
	}))
	a.width, a.height = screen.Size()
	if cfg.Level != 0 {
		a.start(cfg.Level)
	}
	return a
}

func (a *App) onEvent(ev engine.Event) {
	a.flow.SetScore(ev.Score)
	a.feed = append(a.feed, fmt.Sprintf("%5.1fs %s", ev.Elapsed, ev.Kind))
	if len(a.feed) > feedLines {
		a.feed = a.feed[len(a.feed)-feedLines:]
	}
	if a.player != nil {
		a.player.HandleEvent(ev)
	}
}

func (a *App) start(level engine.Level) {
	if err := a.engine.Start(level); err != nil {
		a.logger.Error("start level", "level", level, "err", err)
		return
	}
	a.feed = a.feed[:0]
	a.flow.Start(level)
}

// Run drives the frame loop until ctx is cancelled or the player quits.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.frameRate))
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.engine.Frame(now)
			a.draw()
		}
	}
}

// handleEvent returns false when the player asked to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		act := keyAction(a.flow.Screen(), ev.Key(), ev.Rune())
		if act == actionQuit {
			return false
		}
		a.apply(act)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.mouseDown {
			x, y := ev.Position()
			a.clickCell(x, y)
		}
		a.mouseDown = pressed

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *App) apply(act action) {
	switch act {
	case actionStartManual:
		a.start(engine.LevelManual)
	case actionStartSuppression:
		a.start(engine.LevelSuppression)
	case actionInstructions:
		a.flow.Instructions()
	case actionMenu:
		a.engine.Stop()
		a.flow.Menu()
	case actionSuppress:
		a.engine.SuppressActive()
	case actionNext:
		if level, ok := a.flow.NextLevel(); ok {
			a.start(level)
		}
	}
}

// clickCell lands a click on the fire drawn nearest to the cell, if any.
func (a *App) clickCell(x, y int) {
	if a.flow.Screen() != flow.ScreenPlaying {
		return
	}
	sn := a.engine.Snapshot()
	if id, ok := fireAtCell(a.field(), sn.Fires, x, y); ok {
		a.engine.OnFireClicked(id)
	}
}
