package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// Inspector tracks the fire under the cursor so its details can be shown.
type Inspector struct {
	hovered int  // fire id, 0 = none
	detail  bool // false = intensity badge only, true = full readout
}

// update re-picks the hovered fire from the cursor position.
func (in *Inspector) update(l sceneLayout, sn engine.Snapshot, mx, my int) {
	id, ok := pickFire(l, sn.Fires, sn.MaxIntensity, mx, my)
	if !ok {
		in.hovered = 0
		return
	}
	in.hovered = id
}

func (in *Inspector) reset() {
	in.hovered = 0
}

func inspectorLines(f engine.FireView, sn engine.Snapshot, detail bool) []string {
	lines := []string{fmt.Sprintf("FIRE %d", int(math.Ceil(f.Intensity)))}
	if !detail {
		return lines
	}
	lines = append(lines,
		fmt.Sprintf("id      #%d", f.ID),
		fmt.Sprintf("clicks  %d/%d", f.ClicksRemaining, f.ClicksRequired),
		fmt.Sprintf("worth   %d", int(math.Floor(f.Intensity*10))),
	)
	if sn.Ticket != nil && sn.Ticket.FireID == f.ID {
		lines = append(lines, fmt.Sprintf("auto in %ds", sn.Ticket.Remaining))
	}
	return lines
}

// drawInspector labels the hovered fire just below its flame.
func (g *Game) drawInspector(screen *ebiten.Image, sn engine.Snapshot) {
	if g.inspector.hovered == 0 {
		return
	}
	for _, f := range sn.Fires {
		if f.ID != g.inspector.hovered {
			continue
		}
		lines := inspectorLines(f, sn, g.inspector.detail)
		x, y := g.scene.toScreen(f.X, f.Y)
		y += fireRadius(f.Intensity, sn.MaxIntensity) + 4

		w := float32(0)
		for _, l := range lines {
			w = float32(math.Max(float64(w), float64(len(l)*6)))
		}
		h := float32(len(lines)*14 + 4)
		bx := x - w/2 - 4
		vector.FillRect(screen, bx, y, w+8, h, color.RGBA{A: 170}, false)
		vector.StrokeRect(screen, bx, y, w+8, h, 1, color.RGBA{R: 255, G: 140, B: 40, A: 160}, false)
		for i, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, int(bx)+4, int(y)+i*14)
		}
		return
	}
}
