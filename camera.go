package dropzone

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is an orthographic view that pans horizontally across the world.
// The vertical extents are fixed at [-1, 1]; the horizontal extents follow
// the viewport aspect ratio.
type Camera struct {
	// X is the world-space horizontal offset the camera centres on.
	X float64
	// Y is the world-space vertical offset. Always 0 for the built-in presets.
	Y float64
	// Viewport is the screen-space rectangle, in pixels, this camera renders into.
	Viewport Rect

	// Extents relative to (X, Y), recomputed by Resize.
	Left, Right, Top, Bottom float64

	// Inset shrinks Left and Right towards the centre.
	Inset float64

	// BoundsEnabled clamps X so the visible area stays within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to.
	Bounds Rect

	scrollTween *gween.Tween
}

// newCamera creates a Camera for the given pixel viewport.
func newCamera(viewport Rect, inset float64) *Camera {
	c := &Camera{Inset: inset}
	c.Resize(viewport.Width, viewport.Height)
	c.Viewport.X, c.Viewport.Y = viewport.X, viewport.Y
	return c
}

// Resize recomputes the extents for a new viewport size, preserving the
// aspect ratio, and re-applies bounds.
func (c *Camera) Resize(width, height float64) {
	c.Viewport.Width = width
	c.Viewport.Height = height
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	c.Left = -aspect + c.Inset
	c.Right = aspect - c.Inset
	c.Top = 1
	c.Bottom = -1
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// HalfViewWidth is half the visible world width.
func (c *Camera) HalfViewWidth() float64 {
	return (c.Right - c.Left) / 2
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position. Call this after
// modifying X directly. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// OffsetRange returns the allowed range of X. With bounds disabled the range
// is unbounded.
func (c *Camera) OffsetRange() (lo, hi float64) {
	if !c.BoundsEnabled {
		return math.Inf(-1), math.Inf(1)
	}
	half := c.HalfViewWidth()
	lo = c.Bounds.X + half
	hi = c.Bounds.X + c.Bounds.Width - half
	if lo > hi {
		mid := c.Bounds.X + c.Bounds.Width/2
		return mid, mid
	}
	return lo, hi
}

// clampToBounds restricts X so the visible area stays within Bounds. If the
// bounds are narrower than the view the camera is centred on them.
func (c *Camera) clampToBounds() {
	lo, hi := c.OffsetRange()
	c.X = math.Max(lo, math.Min(c.X, hi))
}

// Pan moves the camera horizontally by dx and re-clamps.
func (c *Camera) Pan(dx float64) {
	c.X += dx
	c.ClampToBounds()
}

// ScrollTo animates the camera to the given horizontal offset over duration
// seconds. A manual Pan does not cancel the animation.
func (c *Camera) ScrollTo(x float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = gween.New(float32(c.X), float32(x), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation and bounds clamping.
func (c *Camera) update(dt float32) {
	if c.scrollTween != nil {
		val, done := c.scrollTween.Update(dt)
		c.X = float64(val)
		if done {
			c.scrollTween = nil
		}
	}
	c.ClampToBounds()
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates.
func (c *Camera) ScreenToNDC(sx, sy float64) (nx, ny float64) {
	nx = (sx-c.Viewport.X)/c.Viewport.Width*2 - 1
	ny = -((sy-c.Viewport.Y)/c.Viewport.Height*2 - 1)
	return
}

// ScreenToWorld converts pixel coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	nx, ny := c.ScreenToNDC(sx, sy)
	wx = c.X + c.Left + (nx+1)/2*(c.Right-c.Left)
	wy = c.Y + c.Bottom + (ny+1)/2*(c.Top-c.Bottom)
	return
}

// WorldToScreen converts world coordinates to pixel coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	nx := (wx-c.X-c.Left)/(c.Right-c.Left)*2 - 1
	ny := (wy-c.Y-c.Bottom)/(c.Top-c.Bottom)*2 - 1
	sx = c.Viewport.X + (nx+1)/2*c.Viewport.Width
	sy = c.Viewport.Y + (1-ny)/2*c.Viewport.Height
	return
}

// PixelsPerUnit returns the horizontal and vertical scale from world units
// to pixels.
func (c *Camera) PixelsPerUnit() (float64, float64) {
	return c.Viewport.Width / (c.Right - c.Left), c.Viewport.Height / (c.Top - c.Bottom)
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	return Rect{
		X:      c.X + c.Left,
		Y:      c.Y + c.Bottom,
		Width:  c.Right - c.Left,
		Height: c.Top - c.Bottom,
	}
}
