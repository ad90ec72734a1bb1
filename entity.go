package dropzone

// HitShape is used for custom hit testing regions. Coordinates are local to
// the entity centre, y-up.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// entityIDCounter is a plain counter; worlds are single-threaded.
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a draggable sprite record. It carries no rendering state beyond
// what the renderer needs to pick an image and tint; physics and input only
// touch the position, velocity and flag fields.
type Entity struct {
	// Identity
	ID   uint32
	Name string

	// Position. Z is derived from Y every tick and should not be set directly.
	X, Y, Z float64

	// Velocity in world units per tick.
	VX, VY float64

	// HalfW and HalfH are the half extents used for bounds, floor contact and
	// default hit testing.
	HalfW, HalfH float64

	// Grounded is set by FloorBounce once the entity has settled.
	Grounded bool
	// Dragged is true while a pointer owns the entity.
	Dragged bool

	// Hit testing. Nil means the HalfW x HalfH box.
	HitShape HitShape

	// Visuals. Fallback is drawn instead of Texture when it failed to load.
	Texture  *Texture
	Color    Color
	Fallback Color
	Alpha    float64
	Scale    float64

	// Metadata
	UserData any

	removed bool
}

// EntitySpec describes an entity to spawn.
type EntitySpec struct {
	Name         string
	X, Y         float64
	HalfW, HalfH float64
	Texture      *Texture
	Color        Color
	HitShape     HitShape
	UserData     any
	// PopIn scales the entity up from zero when it is spawned.
	PopIn bool
}

// newEntity creates an entity from spec with default visual values.
func newEntity(spec EntitySpec) *Entity {
	e := &Entity{
		ID:       nextEntityID(),
		Name:     spec.Name,
		X:        spec.X,
		Y:        spec.Y,
		HalfW:    spec.HalfW,
		HalfH:    spec.HalfH,
		HitShape: spec.HitShape,
		Texture:  spec.Texture,
		Color:    spec.Color,
		UserData: spec.UserData,
		Alpha:    1,
		Scale:    1,
	}
	if e.Color == (Color{}) {
		e.Color = ColorWhite
	}
	return e
}

// Bottom returns the world height of the entity's lower edge.
func (e *Entity) Bottom() float64 {
	return e.Y - e.HalfH
}

// Bounds returns the entity's world-space box.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X - e.HalfW, Y: e.Y - e.HalfH, Width: 2 * e.HalfW, Height: 2 * e.HalfH}
}

// Contains reports whether the world point (wx, wy) hits the entity.
func (e *Entity) Contains(wx, wy float64) bool {
	lx, ly := wx-e.X, wy-e.Y
	if e.HitShape != nil {
		return e.HitShape.Contains(lx, ly)
	}
	if e.HalfW == 0 && e.HalfH == 0 {
		return false
	}
	return lx >= -e.HalfW && lx <= e.HalfW && ly >= -e.HalfH && ly <= e.HalfH
}

// IsRemoved reports whether the entity has been removed from its world.
func (e *Entity) IsRemoved() bool {
	return e.removed
}

// Disturb clears the grounded latch so gravity applies on the next tick.
func (e *Entity) Disturb() {
	e.Grounded = false
}
