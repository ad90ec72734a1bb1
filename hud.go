package dropzone

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudRefreshSeconds = 0.5

// HUD displays FPS, TPS, entity count and camera offset in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type HUD struct {
	world *World
	img   *ebiten.Image
	since float64
}

// NewHUD creates a HUD for w.
func NewHUD(w *World) *HUD {
	return &HUD{world: w, since: hudRefreshSeconds}
}

// hudText formats the overlay text.
func hudText(fps, tps float64, entities int, camX float64, dragging bool) string {
	drag := "-"
	if dragging {
		drag = "yes"
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nEntities: %d\nCamera: %.2f\nDrag: %s",
		fps, tps, entities, camX, drag)
}

// Update refreshes the overlay image when due. dt is in seconds.
func (h *HUD) Update(dt float64) {
	h.since += dt
	if h.since < hudRefreshSeconds {
		return
	}
	h.since = 0
	if h.img == nil {
		// 140x80 fits five DebugPrint lines.
		h.img = ebiten.NewImage(140, 80)
	}
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(h.world.entities), h.world.cam.X, h.world.selection.entity != nil))
}

// Draw draws the overlay at the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.img == nil {
		return
	}
	screen.DrawImage(h.img, nil)
}
