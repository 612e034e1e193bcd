package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fire-Sense/internal/flow"
)

const (
	buttonW   = 320
	buttonH   = 44
	buttonGap = 14
)

// buttons lists the clickable actions of the current non-playing screen.
func (g *Game) buttons() []button {
	cx := g.scene.offX + g.scene.w/2 - buttonW/2
	top := g.scene.offY + g.scene.h/2
	stack := func(items ...button) []button {
		for i := range items {
			items[i].x = cx
			items[i].y = top + i*(buttonH+buttonGap)
			items[i].w = buttonW
			items[i].h = buttonH
		}
		return items
	}
	switch g.flow.Screen() {
	case flow.ScreenMenu:
		return stack(
			button{label: "[1] Level 1 - Manual", act: actionStartManual},
			button{label: "[2] Level 2 - Suppression", act: actionStartSuppression},
			button{label: "[I] How to play", act: actionInstructions},
		)
	case flow.ScreenInstructions:
		b := stack(button{label: "[Esc] Back to menu", act: actionMenu})
		b[0].y = g.scene.offY + g.scene.h - buttonH - 24
		return b
	case flow.ScreenWon, flow.ScreenLost:
		return stack(
			button{label: "[Enter] " + g.flow.PrimaryLabel(), act: actionNext},
			button{label: "[Esc] Menu", act: actionMenu},
		)
	}
	return nil
}

// drawTitle draws centred scaled text with its top at y.
func (g *Game) drawTitle(screen *ebiten.Image, s string, y float64, scale float64, c color.Color) {
	w, _ := text.Measure(s, g.titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.scene.offX)+float64(g.scene.w)/2-w*scale/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.titleFace, op)
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	for _, b := range g.buttons() {
		fill := color.RGBA{R: 150, G: 60, B: 20, A: 255}
		if b.act == actionMenu || b.act == actionInstructions {
			fill = color.RGBA{R: 40, G: 70, B: 120, A: 255}
		}
		g.drawButton(screen, b, fill)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	top := float64(g.scene.offY) + 120
	g.drawTitle(screen, "FIREFIGHTER", top, 5, color.RGBA{R: 255, G: 150, B: 40, A: 255})
	g.drawTitle(screen, "Save the construction vehicle from the fire!", top+90, 2, color.RGBA{R: 255, G: 210, B: 170, A: 255})
	g.drawButtons(screen)
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	y := float64(g.scene.offY) + 40
	g.drawTitle(screen, "HOW TO PLAY", y, 3, color.RGBA{R: 255, G: 220, B: 80, A: 255})
	y += 70
	for _, sec := range flow.InstructionLines {
		g.drawTitle(screen, sec.Title, y, 2, color.RGBA{R: 255, G: 160, B: 80, A: 255})
		y += 36
		for _, line := range sec.Lines {
			g.drawTitle(screen, "- "+line, y, 1.5, color.White)
			y += 26
		}
		y += 24
	}
	g.drawButtons(screen)
}

// drawResult dims the frozen scene and overlays the win or loss card.
func (g *Game) drawResult(screen *ebiten.Image) {
	vector.FillRect(screen, float32(g.scene.offX), float32(g.scene.offY), float32(g.scene.w), float32(g.scene.h), color.RGBA{A: 170}, false)

	top := float64(g.scene.offY) + 130
	if g.flow.Screen() == flow.ScreenWon {
		g.drawTitle(screen, "VICTORY!", top, 5, color.RGBA{R: 80, G: 220, B: 110, A: 255})
		g.drawTitle(screen, "You saved the vehicle from the fire!", top+80, 2, color.White)
	} else {
		g.drawTitle(screen, "THE VEHICLE BURNED DOWN!", top, 4, color.RGBA{R: 240, G: 80, B: 70, A: 255})
		g.drawTitle(screen, "The fire was stronger...", top+80, 2, color.White)
	}
	g.drawTitle(screen, fmt.Sprintf("Score: %d", g.flow.Score()), top+120, 2.5, color.RGBA{R: 255, G: 220, B: 80, A: 255})
	g.drawButtons(screen)
}
