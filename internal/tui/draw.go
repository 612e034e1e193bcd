package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/flow"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleButton = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
)

var conditionColors = [...]tcell.Color{
	engine.ConditionIntact:   tcell.ColorYellow,
	engine.ConditionScorched: tcell.ColorOrange,
	engine.ConditionBurning:  tcell.ColorRed,
	engine.ConditionCritical: tcell.ColorMaroon,
}

func (a *App) draw() {
	a.screen.Clear()
	switch a.flow.Screen() {
	case flow.ScreenMenu:
		a.drawMenu()
	case flow.ScreenInstructions:
		a.drawInstructions()
	default:
		a.drawPlaying()
	}
	a.screen.Show()
}

func (a *App) puts(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= a.width {
			return
		}
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) center(y int, s string, style tcell.Style) {
	a.puts(max(0, (a.width-len([]rune(s)))/2), y, s, style)
}

func (a *App) drawMenu() {
	y := a.height/2 - 4
	a.center(y, "FIREFIGHTER", styleTitle)
	a.center(y+1, "Save the construction vehicle from the fire!", styleDim)
	a.center(y+3, "[1] Level 1 - Manual extinguishing", styleText)
	a.center(y+4, "[2] Level 2 - Suppression system", styleText)
	a.center(y+5, "[i] How to play", styleText)
	a.center(y+6, "[q] Quit", styleDim)
}

func (a *App) drawInstructions() {
	y := 1
	a.center(y, "HOW TO PLAY", styleTitle)
	y += 2
	for _, sec := range flow.InstructionLines {
		a.puts(2, y, sec.Title, styleTitle)
		y++
		for _, line := range sec.Lines {
			a.puts(4, y, "- "+line, styleText)
			y++
		}
		y++
	}
	a.puts(2, y, "[esc] back", styleDim)
}

func (a *App) drawPlaying() {
	sn := a.engine.Snapshot()
	f := a.field()

	mode := "manual"
	if sn.Level == engine.LevelSuppression {
		mode = "suppression system"
	}
	a.puts(0, 0, fmt.Sprintf(" score %d  fires %d/%d  %s  %.1fs", sn.Score, sn.Extinguished, sn.WinTarget, mode, sn.Elapsed), styleText)

	a.drawVehicle(f, sn)
	for _, fire := range sn.Fires {
		x, y := f.cell(fire.X, fire.Y)
		r, g, b := fireRGB(fire.Intensity, sn.MaxIntensity)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b)).Bold(true)
		a.screen.SetContent(x, y, fireGlyph(fire.Intensity, sn.MaxIntensity), nil, style)
		a.puts(x+1, y, fmt.Sprintf("%d", fire.ClicksRemaining), styleDim)
	}

	status := f.y + f.h
	a.drawHealth(status, sn)
	if sn.Ticket != nil {
		a.puts(0, status+1, fmt.Sprintf(" [s] SUPPRESS fire #%d  auto in %ds ", sn.Ticket.FireID, sn.Ticket.Remaining), styleButton)
	}
	for i := 0; i < 2 && i < len(a.feed); i++ {
		a.puts(a.width/2, status+1+i, a.feed[len(a.feed)-1-i], styleDim)
	}

	switch a.flow.Screen() {
	case flow.ScreenWon:
		a.center(f.y+f.h/2-1, "VICTORY! You saved the vehicle", styleGood)
		a.center(f.y+f.h/2, fmt.Sprintf("score %d", a.flow.Score()), styleText)
		a.center(f.y+f.h/2+1, "[enter] "+a.flow.PrimaryLabel()+"  [esc] menu", styleDim)
	case flow.ScreenLost:
		a.center(f.y+f.h/2-1, "THE VEHICLE BURNED DOWN!", styleBad)
		a.center(f.y+f.h/2, fmt.Sprintf("score %d", a.flow.Score()), styleText)
		a.center(f.y+f.h/2+1, "[enter] "+a.flow.PrimaryLabel()+"  [esc] menu", styleDim)
	}
}

// drawVehicle draws a block vehicle along the bottom of the field.
func (a *App) drawVehicle(f field, sn engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(conditionColors[sn.Condition])
	w := min(40, f.w-2)
	x0 := f.x + (f.w-w)/2
	base := f.y + f.h - 1
	a.puts(x0+4, base-3, strings.Repeat("▄", w/3), style)
	a.puts(x0, base-2, strings.Repeat("█", w), style)
	a.puts(x0, base-1, strings.Repeat("█", w), style)
	a.puts(x0+4, base, "(O)", styleDim)
	a.puts(x0+w-7, base, "(O)", styleDim)
	if sn.Smoking() {
		a.puts(x0+w/3, base-5, "~ ~", styleDim)
	}
}

func (a *App) drawHealth(y int, sn engine.Snapshot) {
	const barW = 30
	filled := barW * sn.Health / 100
	color := tcell.ColorGreen
	switch {
	case sn.Health <= 30:
		color = tcell.ColorRed
	case sn.Health <= 60:
		color = tcell.ColorOrange
	}
	a.puts(1, y, "health ", styleText)
	a.puts(8, y, strings.Repeat("█", filled), tcell.StyleDefault.Foreground(color))
	a.puts(8+filled, y, strings.Repeat("░", barW-filled), styleDim)
	a.puts(9+barW, y, fmt.Sprintf("%3d%%", sn.Health), styleText)
}
