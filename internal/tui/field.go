package tui

import (
	"math"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// field is the rectangle of cells the scene is mapped onto.
type field struct {
	x, y, w, h int
}

// field leaves one HUD row on top and three status rows at the bottom.
func (a *App) field() field {
	return field{x: 0, y: 1, w: max(a.width, 1), h: max(a.height-4, 1)}
}

// cell maps scene percentages to a cell inside the field.
func (f field) cell(xPct, yPct float64) (int, int) {
	cx := f.x + int(math.Round(xPct/100*float64(f.w-1)))
	cy := f.y + int(math.Round(yPct/100*float64(f.h-1)))
	return cx, cy
}

// fireAtCell picks the fire drawn closest to (x, y). Cells are roughly twice
// as tall as wide, so vertical distance counts double.
func fireAtCell(f field, fires []engine.FireView, x, y int) (int, bool) {
	const reach = 3.0
	best := math.MaxFloat64
	hit := 0
	for _, fire := range fires {
		cx, cy := f.cell(fire.X, fire.Y)
		dx := float64(cx - x)
		dy := float64(cy-y) * 2
		d := math.Hypot(dx, dy)
		if d <= reach && d < best {
			best = d
			hit = fire.ID
		}
	}
	return hit, hit != 0
}

// fireGlyph grows with intensity.
func fireGlyph(intensity, maxIntensity float64) rune {
	ratio := intensity / maxIntensity
	switch {
	case ratio < 0.25:
		return '^'
	case ratio < 0.5:
		return '*'
	case ratio < 0.75:
		return '#'
	default:
		return '@'
	}
}

// fireRGB runs from yellow to red as the fire grows.
func fireRGB(intensity, maxIntensity float64) (int32, int32, int32) {
	ratio := math.Max(0, math.Min(1, intensity/maxIntensity))
	return 255, int32(math.Max(50, 200-ratio*180)), 0
}
