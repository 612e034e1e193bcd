package game

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/flow"
	"github.com/Garsondee/Fire-Sense/internal/sound"
)

// borderWidth is the pixel gap between the window edge and the scene.
const borderWidth = 24

// hudScale is the integer upscale factor applied to HUD text.
const hudScale = 2

const (
	sceneWidth  = 960
	sceneHeight = 640
	flashFrames = 12
	statusTTL   = 120
)

// Config selects the frontend's starting state.
type Config struct {
	Level  engine.Level // 0 opens the menu
	Audio  bool
	Volume float64
	Seed   int64 // 0 seeds from the clock
	Logger *log.Logger
}

type Game struct {
	width  int
	height int
	scene  sceneLayout

	engine    *engine.Engine
	flow      *flow.Flow
	feed      *EventFeed
	inspector Inspector
	audio     *audioOut
	logger    *log.Logger

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	flash     int // frames of white flash left
	status    string
	statusTTL int

	// Offscreen buffer for HUD text, rendered at 1x then blitted at hudScale.
	hudBuf    *ebiten.Image
	titleFace text.Face
}

func New(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		width:     borderWidth + sceneWidth + borderWidth + feedPanelWidth,
		height:    borderWidth + sceneHeight + borderWidth,
		scene:     sceneLayout{offX: borderWidth, offY: borderWidth, w: sceneWidth, h: sceneHeight},
		flow:      flow.New(),
		feed:      NewEventFeed(),
		logger:    logger,
		prevKeys:  make(map[ebiten.Key]bool),
		titleFace: text.NewGoXFace(basicfont.Face7x13),
	}
	g.engine = engine.New(engine.WithLogger(logger), engine.WithSeed(seed), engine.WithHooks(g.hooks()))
	g.audio = newAudioOut(cfg.Audio, cfg.Volume, logger)
	if cfg.Level != 0 {
		g.start(cfg.Level)
	}
	return g
}

func (g *Game) hooks() engine.Hooks {
	return engine.Hooks{
		OnEvent: g.onEvent,
		OnScore: g.flow.SetScore,
		OnWin: func(score int) {
			g.flow.Win(score)
			g.logger.Info("level won", "score", score)
		},
		OnLose: func() {
			g.flow.Lose()
			g.logger.Info("level lost", "score", g.flow.Score())
		},
	}
}

func (g *Game) onEvent(ev engine.Event) {
	g.feed.Add(ev)
	g.flow.SetScore(ev.Score)
	switch ev.Kind {
	case engine.EventFireExtinguished, engine.EventFireSuppressed:
		g.flash = flashFrames
	}
	g.audio.play(sound.CueFor(ev))
}

func (g *Game) start(level engine.Level) {
	if err := g.engine.Start(level); err != nil {
		g.logger.Error("start level", "level", level, "err", err)
		return
	}
	g.feed.Reset()
	g.inspector.reset()
	g.flash = 0
	g.flow.Start(level)
	g.logger.Info("level started", "level", level)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = statusTTL
}

func (g *Game) Update() error {
	g.handleInput()
	g.engine.Frame(time.Now())

	if g.flash > 0 {
		g.flash--
	}
	if g.statusTTL > 0 {
		g.statusTTL--
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 12, B: 12, A: 255})

	switch g.flow.Screen() {
	case flow.ScreenMenu:
		g.drawMenu(screen)
	case flow.ScreenInstructions:
		g.drawInstructions(screen)
	default:
		sn := g.engine.Snapshot()
		g.drawScene(screen, sn)
		g.drawInspector(screen, sn)
		g.drawSuppressButton(screen, sn)
		g.drawHealthBar(screen, sn)
		g.drawHUD(screen, sn)
		if g.flow.Screen() != flow.ScreenPlaying {
			g.drawResult(screen)
		}
	}

	g.feed.Draw(screen, g.scene.offX+g.scene.w+borderWidth, g.height)

	if g.statusTTL > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, g.scene.offX, g.height-borderWidth+4)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, sn engine.Snapshot) {
	mode := "MANUAL"
	if sn.Level == engine.LevelSuppression {
		mode = "SUPPRESSION SYSTEM"
	}
	lines := []string{
		fmt.Sprintf("SCORE %d   FIRES %d/%d   %s", sn.Score, sn.Extinguished, sn.WinTarget, mode),
		fmt.Sprintf("%.1fs  click fires  Esc=menu  C=copy report  Tab=detail", sn.Elapsed),
	}

	const lineH = 12
	const charW = 6
	const pad = 4

	if g.hudBuf == nil {
		g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	}
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*charW + pad*2)
	boxH := float32(len(lines)*lineH + pad*2)
	bx := float32(g.scene.offX/hudScale + 4)
	by := float32(g.scene.offY/hudScale + 4)

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, color.RGBA{R: 10, G: 6, B: 6, A: 200}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1.0, color.RGBA{R: 140, G: 80, B: 40, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, int(bx)+pad, int(by)+pad+i*lineH)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

func (g *Game) drawHealthBar(screen *ebiten.Image, sn engine.Snapshot) {
	const w, h = 220, 12
	x := float32(g.scene.offX + g.scene.w/2 - w/2)
	y := float32(g.scene.offY + g.scene.h - 24)
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 40, G: 40, B: 40, A: 220}, false)
	r, gr, b := healthColor(sn.Health)
	vector.FillRect(screen, x, y, float32(w*sn.Health/100), h, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 255, G: 255, B: 255, A: 40}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HEALTH %d%%", sn.Health), int(x)+w+8, int(y)-3)
}

// suppressButton is visible while a level-2 ticket is armed.
func (g *Game) suppressButton() (button, bool) {
	if g.flow.Screen() != flow.ScreenPlaying {
		return button{}, false
	}
	sn := g.engine.Snapshot()
	if sn.Ticket == nil {
		return button{}, false
	}
	return button{
		x:     g.scene.offX + g.scene.w - 200,
		y:     g.scene.offY + 56,
		w:     188,
		h:     40,
		label: fmt.Sprintf("SUPPRESS  %ds", sn.Ticket.Remaining),
		act:   actionSuppress,
	}, true
}

func (g *Game) drawSuppressButton(screen *ebiten.Image, sn engine.Snapshot) {
	btn, ok := g.suppressButton()
	if !ok {
		return
	}
	// Blink twice a second.
	bright := (sn.Tick/15)%2 == 0
	fill := color.RGBA{R: 25, G: 100, B: 200, A: 255}
	if bright {
		fill = color.RGBA{R: 50, G: 150, B: 255, A: 255}
	}
	g.drawButton(screen, btn, fill)
}

func (g *Game) drawButton(screen *ebiten.Image, b button, fill color.RGBA) {
	vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 255, G: 255, B: 255, A: 90}, false)
	tw, th := text.Measure(b.label, g.titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.x)+(float64(b.w)-tw)/2, float64(b.y)+(float64(b.h)-th)/2)
	text.Draw(screen, b.label, g.titleFace, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size returns the window size the game lays out for.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
