package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// vehicleScale converts the 440x260 vehicle sketch into scene pixels.
const vehicleScale = 1.3

var bodyColors = [...]color.RGBA{
	engine.ConditionIntact:   {R: 255, G: 214, B: 0, A: 255},
	engine.ConditionScorched: {R: 255, G: 152, B: 0, A: 255},
	engine.ConditionBurning:  {R: 244, G: 67, B: 54, A: 255},
	engine.ConditionCritical: {R: 93, G: 64, B: 55, A: 255},
}

// drawScene renders ground, vehicle, fires and damage effects.
func (g *Game) drawScene(screen *ebiten.Image, sn engine.Snapshot) {
	ox, oy := float32(g.scene.offX), float32(g.scene.offY)
	sw, sh := float32(g.scene.w), float32(g.scene.h)

	vector.FillRect(screen, ox, oy, sw, sh*0.7, color.RGBA{R: 40, G: 44, B: 62, A: 255}, false)
	vector.FillRect(screen, ox, oy+sh*0.7, sw, sh*0.3, color.RGBA{R: 70, G: 58, B: 44, A: 255}, false)

	g.drawVehicle(screen, sn)
	if sn.Smoking() {
		g.drawHeatGlow(screen, sn.Damage)
	}
	for _, f := range sn.Fires {
		g.drawFire(screen, f, sn.MaxIntensity)
	}
	if sn.Danger() {
		g.drawVignette(screen)
	}
	if g.flash > 0 {
		a := uint8(38 * g.flash / flashFrames)
		vector.FillRect(screen, ox, oy, sw, sh, color.RGBA{R: a, G: a, B: a, A: a}, false)
	}

	vector.StrokeRect(screen, ox-1, oy-1, sw+2, sh+2, 2.0, color.RGBA{R: 110, G: 60, B: 40, A: 255}, false)
}

// drawVehicle draws the construction vehicle, shaking above 70 damage.
func (g *Game) drawVehicle(screen *ebiten.Image, sn engine.Snapshot) {
	const k = vehicleScale
	baseX := float64(g.scene.offX) + float64(g.scene.w)/2 - 220*k
	baseY := float64(g.scene.offY) + float64(g.scene.h) - 260*k - 8
	if sn.Danger() {
		baseX += math.Sin(float64(sn.Tick)*1.7) * 2
	}
	at := func(x, y float64) (float32, float32) {
		return float32(baseX + x*k), float32(baseY + y*k)
	}
	rect := func(x, y, w, h float64, c color.Color) {
		px, py := at(x, y)
		vector.FillRect(screen, px, py, float32(w*k), float32(h*k), c, true)
	}
	circle := func(x, y, r float64, c color.Color) {
		px, py := at(x, y)
		vector.FillCircle(screen, px, py, float32(r*k), c, true)
	}

	body := bodyColors[sn.Condition]
	rect(30, 80, 340, 110, body)
	rect(36, 86, 328, 14, color.RGBA{R: 255, G: 255, B: 255, A: 38})

	cabinAlpha := uint8(255)
	if sn.Damage >= 80 {
		cabinAlpha = 76
	}
	rect(56, 40, 150, 64, color.RGBA{R: 41, G: 182, B: 246, A: cabinAlpha})
	if sn.Damage < 80 {
		rect(68, 52, 56, 40, color.RGBA{R: 179, G: 229, B: 252, A: 204})
		rect(132, 52, 56, 40, color.RGBA{R: 179, G: 229, B: 252, A: 204})
	}

	rect(240, 56, 110, 24, color.RGBA{R: 255, G: 112, B: 67, A: 255})
	rect(310, 24, 16, 32, color.RGBA{R: 102, G: 102, B: 102, A: 255})
	beacon := uint8(102)
	if sn.Damage > 50 {
		beacon = 255
	}
	circle(318, 20, 6, color.RGBA{R: 244, G: 67, B: 54, A: beacon})
	rect(30, 176, 340, 10, color.RGBA{R: 51, G: 51, B: 51, A: 255})

	for _, wx := range []float64{104, 310} {
		circle(wx, 210, 36, color.RGBA{R: 51, G: 51, B: 51, A: 255})
		circle(wx, 210, 22, color.RGBA{R: 102, G: 102, B: 102, A: 255})
		circle(wx, 210, 8, color.RGBA{R: 153, G: 153, B: 153, A: 255})
	}

	if sn.Condition == engine.ConditionCritical {
		crack := color.RGBA{R: 17, G: 17, B: 17, A: 128}
		for _, c := range [][4]float64{{80, 90, 160, 150}, {160, 90, 100, 160}, {260, 100, 320, 160}} {
			x1, y1 := at(c[0], c[1])
			x2, y2 := at(c[2], c[3])
			vector.StrokeLine(screen, x1, y1, x2, y2, 2, crack, true)
		}
	}
	if sn.Smoking() {
		for i, p := range [][3]float64{{160, 30, 10}, {180, 18, 14}, {145, 12, 8}} {
			drift := math.Sin(float64(sn.Tick)/20+float64(i)) * 4
			circle(p[0]+drift, p[1]-float64(sn.Tick%60)/6, p[2], color.RGBA{R: 80, G: 80, B: 80, A: 70})
		}
	}
}

// drawFire draws a glow whose size and colour follow intensity, plus a
// ring showing how many clicks have landed.
func (g *Game) drawFire(screen *ebiten.Image, f engine.FireView, maxIntensity float64) {
	x, y := g.scene.toScreen(f.X, f.Y)
	r := fireRadius(f.Intensity, maxIntensity)
	ratio := f.Intensity / maxIntensity
	cr, cg, cb := flameColor(ratio)

	vector.FillCircle(screen, x, y, r*1.4, color.RGBA{R: cr, G: cg / 2, B: cb, A: 50}, true)
	vector.FillCircle(screen, x, y, r, color.RGBA{R: cr, G: cg, B: cb, A: 220}, true)
	vector.FillCircle(screen, x, y, r*0.45, color.RGBA{R: 255, G: 240, B: 160, A: 230}, true)

	// One pip per required click around the rim, lit as clicks land.
	for i := 0; i < f.ClicksRequired; i++ {
		ang := -math.Pi/2 + float64(i)/float64(f.ClicksRequired)*2*math.Pi
		px := x + (r+6)*float32(math.Cos(ang))
		py := y + (r+6)*float32(math.Sin(ang))
		c := color.RGBA{R: 60, G: 60, B: 60, A: 180}
		if i < f.ClicksRequired-f.ClicksRemaining {
			c = color.RGBA{R: 100, G: 200, B: 255, A: 255}
		}
		vector.FillCircle(screen, px, py, 2.5, c, true)
	}
}

// drawHeatGlow tints the ground orange as damage climbs past 40.
func (g *Game) drawHeatGlow(screen *ebiten.Image, damage float64) {
	alpha := math.Min(1, (damage-40)/120)
	a := uint8(alpha * 255)
	gr := uint8(math.Max(0, 80-(damage-40)) * alpha)
	ox, oy := float32(g.scene.offX), float32(g.scene.offY)
	h := float32(g.scene.h) * 0.4
	vector.FillRect(screen, ox, oy+float32(g.scene.h)-h, float32(g.scene.w), h, color.RGBA{R: a, G: gr, A: a}, false)
}

// drawVignette darkens the scene edges in red while the vehicle is in danger.
func (g *Game) drawVignette(screen *ebiten.Image) {
	ox, oy := float32(g.scene.offX), float32(g.scene.offY)
	gw, gh := float32(g.scene.w), float32(g.scene.h)

	outer := float32(40)
	outerDark := color.RGBA{R: 90, A: 110}
	vector.FillRect(screen, ox, oy, gw, outer, outerDark, false)
	vector.FillRect(screen, ox, oy+gh-outer, gw, outer, outerDark, false)
	vector.FillRect(screen, ox, oy, outer, gh, outerDark, false)
	vector.FillRect(screen, ox+gw-outer, oy, outer, gh, outerDark, false)

	inner := float32(120)
	innerDark := color.RGBA{R: 60, A: 40}
	vector.FillRect(screen, ox, oy, gw, inner, innerDark, false)
	vector.FillRect(screen, ox, oy+gh-inner, gw, inner, innerDark, false)
	vector.FillRect(screen, ox, oy, inner, gh, innerDark, false)
	vector.FillRect(screen, ox+gw-inner, oy, inner, gh, innerDark, false)
}
