package dropzone

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned by LoadScript when the script has no steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep represents a single action in a script. Coordinates are screen
// pixels.
type scriptStep struct {
	Action string  `yaml:"action"`
	Name   string  `yaml:"name,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level structure for a script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected input, spawns and resizes across frames
// for automated runs. Attach to a World via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) script and returns a ScriptRunner.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "spawn", "wait", "resize":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the world. The runner's step
// method is called from World.Update before input processing each frame.
func (w *World) SetScriptRunner(runner *ScriptRunner) {
	w.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(w *World) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		w.InjectPress(st.X, st.Y)
	case "move":
		w.InjectMove(st.X, st.Y)
	case "release":
		w.InjectRelease(st.X, st.Y)
	case "click":
		w.InjectPress(st.X, st.Y)
		w.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "spawn":
		w.SpawnAt(EntitySpec{Name: st.Name, PopIn: true}, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		w.Resize(st.Width, st.Height)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
