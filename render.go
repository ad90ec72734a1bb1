package dropzone

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// Default colors used by the renderer.
var (
	defaultClearColor = Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	defaultFloorColor = HexColor(0x8B4513)
	defaultTrashColor = Color{R: 0.9, G: 0.2, B: 0.2, A: 0.45}
	segmentColors     = []Color{
		{R: 0.16, G: 0.22, B: 0.30, A: 1},
		{R: 0.20, G: 0.27, B: 0.35, A: 1},
	}
)

const floorThickness = 0.1

var whitePixel *ebiten.Image

// solidImage returns a lazily created 1x1 white image for solid fills.
func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Renderer draws a World: background segments, the floor band, the trash
// zone and the entities in depth order. It only reads world state.
type Renderer struct {
	world *World

	// Backgrounds holds one texture per segment. Missing or failed entries
	// are drawn as alternating solid bands.
	Backgrounds []*Texture
	ClearColor  Color
	FloorColor  Color
	TrashColor  Color
	// ShowFloor draws the floor band.
	ShowFloor bool

	order    []*Entity
	reported map[*Texture]bool
}

// NewRenderer creates a renderer for w with default colors.
func NewRenderer(w *World) *Renderer {
	return &Renderer{
		world:      w,
		ClearColor: defaultClearColor,
		FloorColor: defaultFloorColor,
		TrashColor: defaultTrashColor,
		ShowFloor:  true,
		reported:   make(map[*Texture]bool),
	}
}

// drawOrder returns the live entities sorted far to near (ascending Z). The
// sort is stable, so equal depths keep spawn order.
func (r *Renderer) drawOrder() []*Entity {
	r.order = append(r.order[:0], r.world.entities...)
	slices.SortStableFunc(r.order, func(a, b *Entity) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		default:
			return 0
		}
	})
	return r.order
}

// pollTextures collects finished background loads and logs failures once.
func (r *Renderer) pollTextures() {
	for _, t := range r.Backgrounds {
		r.pollTexture(t)
	}
	for _, e := range r.world.entities {
		r.pollTexture(e.Texture)
	}
}

func (r *Renderer) pollTexture(t *Texture) {
	if t == nil || !t.Poll() {
		return
	}
	if t.Failed() && !r.reported[t] {
		r.reported[t] = true
		r.world.logger.Warn("texture failed to load, using fallback color",
			zap.String("path", t.Path), zap.Error(t.Err()))
	} else if t.Ready() {
		r.world.logger.Debug("texture loaded", zap.String("path", t.Path))
	}
}

// Draw renders the world into screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.pollTextures()
	screen.Fill(r.ClearColor.toRGBA())

	cfg := &r.world.cfg
	for i := 0; i < cfg.Segments; i++ {
		cx := float64(i) * cfg.SegmentWidth
		box := Rect{X: cx - cfg.SegmentWidth/2, Y: -1, Width: cfg.SegmentWidth, Height: 2}
		var tex *Texture
		if i < len(r.Backgrounds) {
			tex = r.Backgrounds[i]
		}
		if img := tex.Image(); img != nil {
			r.drawImage(screen, img, box, ColorWhite)
		} else {
			r.drawImage(screen, solidImage(), box, segmentColors[i%len(segmentColors)])
		}
	}

	if r.ShowFloor {
		vis := r.world.cam.VisibleBounds()
		r.drawImage(screen, solidImage(), Rect{
			X: vis.X, Y: cfg.FloorY - floorThickness/2, Width: vis.Width, Height: floorThickness,
		}, r.FloorColor)
	}

	if tz := cfg.TrashZone; tz != nil {
		sx, sy := r.world.cam.WorldToScreen(tz.X, tz.Y)
		ppu, _ := r.world.cam.PixelsPerUnit()
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(tz.Radius*ppu),
			r.TrashColor.toRGBA(), true)
	}

	for _, e := range r.drawOrder() {
		r.drawEntity(screen, e)
	}
}

// drawEntity draws e with its texture, or its fallback color if the texture
// failed. Pending textures draw nothing.
func (r *Renderer) drawEntity(screen *ebiten.Image, e *Entity) {
	if e.Scale <= 0 || e.Alpha <= 0 {
		return
	}
	hw, hh := e.HalfW*e.Scale, e.HalfH*e.Scale
	box := Rect{X: e.X - hw, Y: e.Y - hh, Width: 2 * hw, Height: 2 * hh}
	tint := e.Color
	tint.A *= e.Alpha

	switch {
	case e.Texture == nil:
		r.drawImage(screen, solidImage(), box, tint)
	case e.Texture.Failed():
		fb := e.Fallback
		fb.A *= e.Alpha
		r.drawImage(screen, solidImage(), box, fb)
	default:
		if img := e.Texture.Image(); img != nil {
			r.drawImage(screen, img, box, tint)
		}
	}
}

// drawImage stretches img over the world-space box.
func (r *Renderer) drawImage(screen, img *ebiten.Image, box Rect, tint Color) {
	cam := r.world.cam
	if !box.Intersects(cam.VisibleBounds()) {
		return
	}
	sx, sy := cam.WorldToScreen(box.X, box.Y+box.Height)
	ppuX, ppuY := cam.PixelsPerUnit()
	b := img.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(box.Width*ppuX/float64(b.Dx()), box.Height*ppuY/float64(b.Dy()))
	op.GeoM.Translate(sx, sy)
	op.ColorScale.Scale(float32(tint.R*tint.A), float32(tint.G*tint.A), float32(tint.B*tint.A), float32(tint.A))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}
