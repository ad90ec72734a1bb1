package dropzone

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// FallbackColors is the palette used for entities whose texture failed to
// load. Entity i receives FallbackColors[i % len(FallbackColors)].
var FallbackColors = []Color{
	{R: 1.00, G: 0.42, B: 0.42, A: 1}, // #FF6B6B
	{R: 0.31, G: 0.80, B: 0.77, A: 1}, // #4ECDC4
	{R: 0.27, G: 0.72, B: 0.82, A: 1}, // #45B7D1
	{R: 0.59, G: 0.81, B: 0.71, A: 1}, // #96CEB4
	{R: 1.00, G: 0.79, B: 0.34, A: 1}, // #FECA57
	{R: 1.00, G: 0.62, B: 0.26, A: 1}, // #FF9F43
}

// HexColor converts a 0xRRGGBB value to an opaque Color.
func HexColor(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world space. World space is y-up, so
// (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// FloorPolicy selects how entities interact with the floor plane.
type FloorPolicy uint8

const (
	// FloorBounce bounces with damping until the rebound is below the
	// threshold, then latches the entity as grounded.
	FloorBounce FloorPolicy = iota
	// FloorRest integrates only entities above the floor. Entities that cross
	// it are snapped onto it and stay there until repositioned.
	FloorRest
)

// String returns the config name of the policy.
func (p FloorPolicy) String() string {
	switch p {
	case FloorBounce:
		return "bounce"
	case FloorRest:
		return "rest"
	default:
		return "unknown"
	}
}

// BoundsMode selects the horizontal clamping rule.
type BoundsMode uint8

const (
	// BoundsArena clamps entities to the visible extents and reflects their
	// horizontal velocity with attenuation.
	BoundsArena BoundsMode = iota
	// BoundsWorld clamps entities to the scrollable world as a hard stop.
	BoundsWorld
)

// String returns the config name of the mode.
func (m BoundsMode) String() string {
	switch m {
	case BoundsArena:
		return "arena"
	case BoundsWorld:
		return "world"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPickUp EventType = iota // an entity was hit by a pointer press and is now dragged
	EventMove                    // the dragged entity followed the pointer
	EventDrop                    // the pointer was released and the entity returned to physics
	EventTrash                   // the dragged entity entered the trash zone and was removed
	EventSpawn                   // a new entity was added to the world
)

// String returns a short name for logs.
func (e EventType) String() string {
	switch e {
	case EventPickUp:
		return "pickup"
	case EventMove:
		return "move"
	case EventDrop:
		return "drop"
	case EventTrash:
		return "trash"
	case EventSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
