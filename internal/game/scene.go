package game

import (
	"math"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// sceneLayout maps scene percentages to screen pixels.
type sceneLayout struct {
	offX, offY int
	w, h       int
}

func (l sceneLayout) toScreen(xPct, yPct float64) (float32, float32) {
	return float32(float64(l.offX) + xPct/100*float64(l.w)),
		float32(float64(l.offY) + yPct/100*float64(l.h))
}

func (l sceneLayout) contains(mx, my int) bool {
	return mx >= l.offX && mx < l.offX+l.w && my >= l.offY && my < l.offY+l.h
}

// fireRadius is the drawn and clickable radius of a fire in pixels.
func fireRadius(intensity, maxIntensity float64) float32 {
	ratio := 0.0
	if maxIntensity > 0 {
		ratio = math.Max(0, math.Min(1, intensity/maxIntensity))
	}
	return float32(15 + ratio*25)
}

// pickFire returns the fire under (mx, my). Overlapping fires resolve to
// the one whose centre is closest.
func pickFire(l sceneLayout, fires []engine.FireView, maxIntensity float64, mx, my int) (int, bool) {
	best2 := math.MaxFloat64
	hit := 0
	for _, f := range fires {
		fx, fy := l.toScreen(f.X, f.Y)
		dx := float64(fx) - float64(mx)
		dy := float64(fy) - float64(my)
		d2 := dx*dx + dy*dy
		r := float64(fireRadius(f.Intensity, maxIntensity))
		if d2 <= r*r && d2 < best2 {
			best2 = d2
			hit = f.ID
		}
	}
	return hit, hit != 0
}

// button is a clickable screen rectangle.
type button struct {
	x, y, w, h int
	label      string
	act        action
}

func (b button) hit(mx, my int) bool {
	return mx >= b.x && mx < b.x+b.w && my >= b.y && my < b.y+b.h
}

func buttonAt(buttons []button, mx, my int) (action, bool) {
	for _, b := range buttons {
		if b.hit(mx, my) {
			return b.act, true
		}
	}
	return actionNone, false
}

// flameColor runs from yellow to deep red as the fire grows.
func flameColor(ratio float64) (r, g, b uint8) {
	ratio = math.Max(0, math.Min(1, ratio))
	return 255, uint8(math.Max(50, 200-ratio*180)), 0
}

// healthColor follows the health bar bands: green, amber, red.
func healthColor(health int) (r, g, b uint8) {
	switch {
	case health > 60:
		return 76, 175, 80
	case health > 30:
		return 255, 152, 0
	default:
		return 244, 67, 54
	}
}
