package dropzone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when a config names a preset that does not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// TrashZone is a world-space disc that deletes the dragged entity on contact.
type TrashZone struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// Contains reports whether (x, y) is strictly closer than Radius to the zone centre.
func (z TrashZone) Contains(x, y float64) bool {
	dx := x - z.X
	dy := y - z.Y
	return dx*dx+dy*dy < z.Radius*z.Radius
}

// Config holds every tunable of a World. Values are fixed once the World is
// constructed; use the presets as a starting point.
type Config struct {
	// Preset names the preset a loaded file overlays. Informational once loaded.
	Preset string `yaml:"preset" toml:"preset"`

	// Gravity is added to VY every tick. Must be negative (world is y-up).
	Gravity float64 `yaml:"gravity" toml:"gravity"`
	// FloorY is the world height of the floor plane.
	FloorY float64 `yaml:"floorY" toml:"floorY"`
	// Floor selects the floor contact rule.
	Floor FloorPolicy `yaml:"floor" toml:"floor"`
	// FloorUsesCenter tests floor contact against the entity centre instead
	// of its lower edge. Only consulted by FloorRest.
	FloorUsesCenter bool `yaml:"floorUsesCenter" toml:"floorUsesCenter"`
	// BounceDamping is the fraction of speed kept after a bounce, in [0, 1).
	BounceDamping float64 `yaml:"bounceDamping" toml:"bounceDamping"`
	// BounceThreshold is the |VY| at or below which a FloorBounce entity
	// latches as grounded instead of bouncing.
	BounceThreshold float64 `yaml:"bounceThreshold" toml:"bounceThreshold"`
	// Friction multiplies VX every tick while grounded, in (0, 1].
	Friction float64 `yaml:"friction" toml:"friction"`

	// Bounds selects the horizontal clamping rule.
	Bounds BoundsMode `yaml:"bounds" toml:"bounds"`
	// WallRestitution scales the reflected VX when an arena wall is hit.
	WallRestitution float64 `yaml:"wallRestitution" toml:"wallRestitution"`

	// SegmentWidth is the width of one background segment in world units.
	SegmentWidth float64 `yaml:"segmentWidth" toml:"segmentWidth"`
	// Segments is the number of background segments laid side by side.
	Segments int `yaml:"segments" toml:"segments"`
	// ViewInset shrinks the horizontal camera extents on each side.
	ViewInset float64 `yaml:"viewInset" toml:"viewInset"`

	// EdgeMargin is the distance in pixels from a screen edge that triggers
	// camera scrolling while dragging. Zero disables edge scrolling.
	EdgeMargin float64 `yaml:"edgeMargin" toml:"edgeMargin"`
	// ScrollSpeed is the camera offset change per tick while edge scrolling.
	ScrollSpeed float64 `yaml:"scrollSpeed" toml:"scrollSpeed"`

	// TrashZone deletes the dragged entity on contact. Nil disables it.
	TrashZone *TrashZone `yaml:"trashZone" toml:"trashZone"`

	// DepthReference is the height below which depth grows as entities descend.
	DepthReference float64 `yaml:"depthReference" toml:"depthReference"`
	// DefaultDepth is the depth of entities at or above DepthReference.
	DefaultDepth float64 `yaml:"defaultDepth" toml:"defaultDepth"`

	// SpawnSize is the half extent used by Spawn when EntitySpec leaves it zero.
	SpawnSize Vec2 `yaml:"spawnSize" toml:"spawnSize"`
}

// ArenaConfig is a single-screen arena: entities bounce on the floor until
// they settle and rebound off the screen edges.
func ArenaConfig() Config {
	return Config{
		Preset:          "arena",
		Gravity:         -0.008,
		FloorY:          -0.5,
		Floor:           FloorBounce,
		BounceDamping:   0.6,
		BounceThreshold: 0.01,
		Friction:        0.95,
		Bounds:          BoundsArena,
		WallRestitution: 0.5,
		SegmentWidth:    2,
		Segments:        1,
		DepthReference:  0,
		DefaultDepth:    1,
		SpawnSize:       Vec2{X: 0.075, Y: 0.075},
	}
}

// SimpleConfig drops entities straight onto the floor with no rebound.
func SimpleConfig() Config {
	return Config{
		Preset:          "simple",
		Gravity:         -0.005,
		FloorY:          -0.5,
		Floor:           FloorRest,
		FloorUsesCenter: true,
		Friction:        1,
		Bounds:          BoundsArena,
		WallRestitution: 0.5,
		SegmentWidth:    2,
		Segments:        1,
		DepthReference:  0,
		DefaultDepth:    1,
		SpawnSize:       Vec2{X: 0.1, Y: 0.2},
	}
}

// ScrollingConfig is a five-segment side-scrolling world with edge scrolling
// while dragging and a trash zone near the left of the first segment.
func ScrollingConfig() Config {
	return Config{
		Preset:          "scrolling",
		Gravity:         -0.009,
		FloorY:          -0.2,
		Floor:           FloorRest,
		FloorUsesCenter: true,
		BounceDamping:   0.3,
		Friction:        1,
		Bounds:          BoundsWorld,
		SegmentWidth:    2,
		Segments:        5,
		EdgeMargin:      100,
		ScrollSpeed:     0.03,
		TrashZone:       &TrashZone{X: -0.8, Y: 0.8, Radius: 0.2},
		DepthReference:  0,
		DefaultDepth:    1,
		SpawnSize:       Vec2{X: 0.05, Y: 0.1},
	}
}

// Preset returns the named preset config.
func Preset(name string) (Config, error) {
	switch strings.ToLower(name) {
	case "", "arena":
		return ArenaConfig(), nil
	case "simple":
		return SimpleConfig(), nil
	case "scrolling":
		return ScrollingConfig(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// WorldWidth is the total scrollable width covered by background segments.
func (c *Config) WorldWidth() float64 {
	return float64(c.Segments) * c.SegmentWidth
}

// WorldLeft and WorldRight are the horizontal world limits. Segment i is
// centred at i*SegmentWidth, so the world starts half a segment left of 0.
func (c *Config) WorldLeft() float64  { return -c.SegmentWidth / 2 }
func (c *Config) WorldRight() float64 { return c.WorldWidth() - c.SegmentWidth/2 }

// Validate checks that every field is in range.
func (c *Config) Validate() error {
	if c.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %v", c.Gravity)
	}
	if c.BounceDamping < 0 || c.BounceDamping >= 1 {
		return fmt.Errorf("bounceDamping must be in [0, 1), got %v", c.BounceDamping)
	}
	if c.BounceThreshold < 0 {
		return fmt.Errorf("bounceThreshold must be >= 0, got %v", c.BounceThreshold)
	}
	if c.Friction <= 0 || c.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %v", c.Friction)
	}
	if c.WallRestitution < 0 || c.WallRestitution > 1 {
		return fmt.Errorf("wallRestitution must be in [0, 1], got %v", c.WallRestitution)
	}
	if c.SegmentWidth <= 0 {
		return fmt.Errorf("segmentWidth must be positive, got %v", c.SegmentWidth)
	}
	if c.Segments < 1 {
		return fmt.Errorf("segments must be >= 1, got %d", c.Segments)
	}
	if c.EdgeMargin < 0 || c.ScrollSpeed < 0 {
		return fmt.Errorf("edgeMargin and scrollSpeed must be >= 0, got %v and %v", c.EdgeMargin, c.ScrollSpeed)
	}
	if c.TrashZone != nil && c.TrashZone.Radius < 0 {
		return fmt.Errorf("trashZone radius must be >= 0, got %v", c.TrashZone.Radius)
	}
	if c.Floor != FloorBounce && c.Floor != FloorRest {
		return fmt.Errorf("unknown floor policy %d", c.Floor)
	}
	if c.Bounds != BoundsArena && c.Bounds != BoundsWorld {
		return fmt.Errorf("unknown bounds mode %d", c.Bounds)
	}
	return nil
}

// LoadConfig reads a YAML or TOML config file (chosen by extension), overlays
// it on the preset it names and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes config data in the given format ("yaml" or "toml").
func ParseConfig(data []byte, format string) (*Config, error) {
	unmarshal := yaml.Unmarshal
	if format == "toml" {
		unmarshal = toml.Unmarshal
	}

	var head struct {
		Preset string `yaml:"preset" toml:"preset"`
	}
	if err := unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg, err := Preset(head.Preset)
	if err != nil {
		return nil, err
	}
	if err := unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p FloorPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FloorPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "bounce":
		*p = FloorBounce
	case "rest":
		*p = FloorRest
	default:
		return fmt.Errorf("unknown floor policy %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m BoundsMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BoundsMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "arena":
		*m = BoundsArena
	case "world":
		*m = BoundsWorld
	default:
		return fmt.Errorf("unknown bounds mode %q", text)
	}
	return nil
}
