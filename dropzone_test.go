package dropzone

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"bottom-left corner", 10, 20, true},
		{"top-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside below", 50, 19, false},
		{"outside above", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint left", Rect{-100, 10, 50, 50}, false},
		{"disjoint below", Rect{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	c := HexColor(0x8B4513)
	if !approxEqual(c.R, 139.0/255, epsilon) || !approxEqual(c.G, 69.0/255, epsilon) || !approxEqual(c.B, 19.0/255, epsilon) {
		t.Errorf("HexColor(0x8B4513) = %+v", c)
	}
	if c.A != 1 {
		t.Errorf("A = %v, want 1", c.A)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.R != 127 || c.G != 63 || c.B != 0 || c.A != 127 {
		t.Errorf("toRGBA = %+v", c)
	}
}

func TestFallbackColorsPalette(t *testing.T) {
	if len(FallbackColors) != 6 {
		t.Fatalf("len(FallbackColors) = %d, want 6", len(FallbackColors))
	}
	for i, c := range FallbackColors {
		if c.A != 1 {
			t.Errorf("FallbackColors[%d] not opaque", i)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FloorBounce.String(), "bounce"},
		{FloorRest.String(), "rest"},
		{FloorPolicy(9).String(), "unknown"},
		{BoundsArena.String(), "arena"},
		{BoundsWorld.String(), "world"},
		{EventPickUp.String(), "pickup"},
		{EventTrash.String(), "trash"},
		{EventSpawn.String(), "spawn"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 1) != 1 || clamp(-5, 0, 1) != 0 || clamp(0.5, 0, 1) != 0.5 {
		t.Error("clamp out of range")
	}
}
