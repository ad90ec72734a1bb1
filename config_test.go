package dropzone

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range []string{"arena", "simple", "scrolling"} {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if cfg.Preset != name {
			t.Errorf("Preset(%q).Preset = %q", name, cfg.Preset)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset(%q) does not validate: %v", name, err)
		}
	}
}

func TestPresetDefaultsToArena(t *testing.T) {
	cfg, err := Preset("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Preset != "arena" {
		t.Errorf("Preset(\"\") = %q, want arena", cfg.Preset)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestScrollingWorldLimits(t *testing.T) {
	cfg := ScrollingConfig()
	if cfg.WorldWidth() != 10 {
		t.Errorf("WorldWidth = %v, want 10", cfg.WorldWidth())
	}
	if cfg.WorldLeft() != -1 || cfg.WorldRight() != 9 {
		t.Errorf("limits = [%v, %v], want [-1, 9]", cfg.WorldLeft(), cfg.WorldRight())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"positive gravity", func(c *Config) { c.Gravity = 0.1 }},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }},
		{"damping one", func(c *Config) { c.BounceDamping = 1 }},
		{"negative threshold", func(c *Config) { c.BounceThreshold = -1 }},
		{"zero friction", func(c *Config) { c.Friction = 0 }},
		{"restitution above one", func(c *Config) { c.WallRestitution = 2 }},
		{"zero segment width", func(c *Config) { c.SegmentWidth = 0 }},
		{"no segments", func(c *Config) { c.Segments = 0 }},
		{"negative margin", func(c *Config) { c.EdgeMargin = -5 }},
		{"negative trash radius", func(c *Config) { c.TrashZone = &TrashZone{Radius: -1} }},
		{"bad floor policy", func(c *Config) { c.Floor = FloorPolicy(7) }},
		{"bad bounds mode", func(c *Config) { c.Bounds = BoundsMode(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ArenaConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseConfigYAMLOverlay(t *testing.T) {
	data := []byte(`
preset: scrolling
gravity: -0.02
floor: bounce
bounceDamping: 0.5
trashZone:
  x: 1
  y: 0.5
  radius: 0.3
`)
	cfg, err := ParseConfig(data, "yaml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Gravity != -0.02 || cfg.Floor != FloorBounce || cfg.BounceDamping != 0.5 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	// Untouched fields keep the preset values.
	if cfg.Segments != 5 || cfg.Bounds != BoundsWorld || cfg.EdgeMargin != 100 {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if cfg.TrashZone == nil || cfg.TrashZone.X != 1 || cfg.TrashZone.Radius != 0.3 {
		t.Errorf("TrashZone = %+v", cfg.TrashZone)
	}
}

func TestParseConfigTOMLOverlay(t *testing.T) {
	data := []byte(`
preset = "arena"
gravity = -0.01
bounds = "world"
segments = 3
edgeMargin = 50.0
scrollSpeed = 0.05
`)
	cfg, err := ParseConfig(data, "toml")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Preset != "arena" || cfg.Floor != FloorBounce {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Gravity != -0.01 || cfg.Bounds != BoundsWorld || cfg.Segments != 3 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.EdgeMargin != 50 || cfg.ScrollSpeed != 0.05 {
		t.Errorf("edge scroll = %v/%v, want 50/0.05", cfg.EdgeMargin, cfg.ScrollSpeed)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"malformed yaml", "gravity: [", "yaml"},
		{"malformed toml", "gravity = ", "toml"},
		{"invalid value", "gravity: 0.5", "yaml"},
		{"unknown floor", "floor: sticky", "yaml"},
		{"unknown bounds", `bounds = "sphere"`, "toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data), tt.format); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseConfigUnknownPreset(t *testing.T) {
	_, err := ParseConfig([]byte("preset: moon"), "yaml")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadConfigByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "world.yaml")
	if err := os.WriteFile(yamlPath, []byte("preset: simple\nfriction: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadConfig yaml: %v", err)
	}
	if cfg.Preset != "simple" || cfg.Friction != 0.9 {
		t.Errorf("yaml cfg = %+v", cfg)
	}

	tomlPath := filepath.Join(dir, "world.toml")
	if err := os.WriteFile(tomlPath, []byte("preset = \"scrolling\"\nscrollSpeed = 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfig toml: %v", err)
	}
	if cfg.Preset != "scrolling" || cfg.ScrollSpeed != 0.1 {
		t.Errorf("toml cfg = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestTrashZoneContainsIsStrict(t *testing.T) {
	z := TrashZone{X: 0, Y: 0, Radius: 0.2}
	if !z.Contains(0.1, 0.1) {
		t.Error("point inside radius not contained")
	}
	if z.Contains(0.2, 0) {
		t.Error("point on the boundary should not be contained")
	}
}

func TestFloorPolicyTextRoundTrip(t *testing.T) {
	var p FloorPolicy
	if err := p.UnmarshalText([]byte("REST")); err != nil || p != FloorRest {
		t.Errorf("UnmarshalText(REST) = %v, %v", p, err)
	}
	b, _ := p.MarshalText()
	if string(b) != "rest" {
		t.Errorf("MarshalText = %q", b)
	}
}
