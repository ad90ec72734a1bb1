package dropzone

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// EntityStore is the interface for optional ECS integration.
// When set on a World, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	ScreenX   float64
	ScreenY   float64
	WorldX    float64
	WorldY    float64
}

const popInDuration = 0.25

// World is the simulation state: the live entities, the camera, the pointer
// selection and the tunables. All mutation happens on the caller's goroutine;
// World is not safe for concurrent use.
type World struct {
	cfg      Config
	cam      *Camera
	entities []*Entity

	// Input state
	selection   selection
	pointers    [maxPointers]pointerState
	handlers    handlerRegistry
	input       InputSource
	sampleBuf   []PointerSample
	injectQueue []syntheticPointerEvent
	runner      *ScriptRunner

	tweens []*TweenGroup
	store  EntityStore
	logger *zap.Logger
	debug  bool

	tick       uint64
	spawnCount int
}

// NewWorld validates cfg and creates a World whose camera renders into a
// viewport of the given pixel size.
func NewWorld(cfg Config, viewportW, viewportH float64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if viewportW <= 0 || viewportH <= 0 {
		return nil, fmt.Errorf("new world: viewport must be positive, got %vx%v", viewportW, viewportH)
	}
	w := &World{
		cfg:    cfg,
		cam:    newCamera(Rect{Width: viewportW, Height: viewportH}, cfg.ViewInset),
		logger: zap.NewNop(),
	}
	w.cam.SetBounds(Rect{X: cfg.WorldLeft(), Y: -1, Width: cfg.WorldWidth(), Height: 2})
	return w, nil
}

// Config returns a copy of the world's configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Camera returns the world's camera.
func (w *World) Camera() *Camera {
	return w.cam
}

// Entities returns the live entities in spawn order. The returned slice MUST
// NOT be mutated.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Selected returns the entity currently being dragged, or nil.
func (w *World) Selected() *Entity {
	return w.selection.entity
}

// Tick returns the number of completed Update calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// SetInputSource installs the polled input backend. Nil disables polling.
func (w *World) SetInputSource(src InputSource) {
	w.input = src
}

// SetEntityStore sets the optional ECS bridge.
func (w *World) SetEntityStore(store EntityStore) {
	w.store = store
}

// SetLogger replaces the world's logger. Nil restores the no-op logger.
func (w *World) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w.logger = logger
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

// SetDebugMode enables or disables per-frame timing logs at debug level.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// Resize updates the camera for a new viewport size.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == w.cam.Viewport.Width && height == w.cam.Viewport.Height {
		return
	}
	w.cam.Resize(width, height)
	if w.selection.entity != nil {
		w.followPointer()
	}
	w.logger.Debug("viewport resized", zap.Float64("width", width), zap.Float64("height", height))
}

// Update advances the world by one tick: input, camera, edge scrolling,
// physics, trash zone, depth ordering and tweens, in that order.
func (w *World) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	if w.runner != nil {
		w.runner.step(w)
	}
	w.processInput()
	w.cam.update(dt)
	w.edgeScroll()
	w.stepPhysics()
	w.checkTrash()
	w.updateDepths()
	w.updateTweens(dt)
	w.tick++

	if w.debug {
		w.debugLog(frameStats{
			tick:     w.tick,
			stepTime: time.Since(t0),
			entities: len(w.entities),
			dragging: w.selection.entity != nil,
			cameraX:  w.cam.X,
		})
	}
}

// Spawn adds an entity at (spec.X, spec.Y). A zero half extent defaults to
// the config's SpawnSize on that axis.
func (w *World) Spawn(spec EntitySpec) *Entity {
	if spec.HalfW == 0 {
		spec.HalfW = w.cfg.SpawnSize.X
	}
	if spec.HalfH == 0 {
		spec.HalfH = w.cfg.SpawnSize.Y
	}
	e := newEntity(spec)
	e.Fallback = FallbackColors[w.spawnCount%len(FallbackColors)]
	e.Z = depthFor(&w.cfg, e.Y)
	w.spawnCount++
	w.entities = append(w.entities, e)

	if spec.PopIn {
		e.Scale = 0
		w.tweens = append(w.tweens, TweenScale(e, 1, popInDuration, ease.OutBack))
	}

	w.fire(EventSpawn, e, -1, 0, 0)
	w.logger.Debug("entity spawned", zapEntity(e)...)
	return e
}

// SpawnInView adds an entity at the horizontal centre of the view, at height 0.
func (w *World) SpawnInView(spec EntitySpec) *Entity {
	spec.X = w.cam.X
	spec.Y = 0
	return w.Spawn(spec)
}

// SpawnAt adds an entity at the world point under the screen pixel (sx, sy),
// as when a new sprite is dropped onto the canvas.
func (w *World) SpawnAt(spec EntitySpec, sx, sy float64) *Entity {
	spec.X, spec.Y = w.cam.ScreenToWorld(sx, sy)
	return w.Spawn(spec)
}

// Remove deletes e from the world by identity. If e was being dragged the
// selection is cleared. Returns false if e is not live.
func (w *World) Remove(e *Entity) bool {
	for i, c := range w.entities {
		if c != e {
			continue
		}
		copy(w.entities[i:], w.entities[i+1:])
		w.entities[len(w.entities)-1] = nil
		w.entities = w.entities[:len(w.entities)-1]

		e.removed = true
		e.Dragged = false
		if w.selection.entity == e {
			w.selection = selection{}
		}
		return true
	}
	return false
}

// updateTweens advances running tweens and drops finished ones.
func (w *World) updateTweens(dt float32) {
	live := w.tweens[:0]
	for _, g := range w.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(w.tweens); i++ {
		w.tweens[i] = nil
	}
	w.tweens = live
}
