package dropzone

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
)

// PointerSample is one pointer's state for the current tick, in screen pixels.
type PointerSample struct {
	ID      int
	X, Y    float64
	Pressed bool
}

// InputSource supplies pointer samples once per tick. Run installs one backed
// by Ebitengine; tests and headless hosts leave it nil and call the Pointer*
// methods or inject events instead.
type InputSource interface {
	Poll(buf []PointerSample) []PointerSample
}

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// selection is the single active drag. entity is nil when idle.
type selection struct {
	entity    *Entity
	pointerID int
	screenX   float64
	screenY   float64
}

// --- Callback contexts ---

// EventContext carries interaction event data to scene-level handlers.
type EventContext struct {
	Type      EventType
	Entity    *Entity
	EntityID  uint32
	UserData  any
	PointerID int
	ScreenX   float64
	ScreenY   float64
	WorldX    float64
	WorldY    float64
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(EventContext)
}

const eventTypeCount = int(EventSpawn) + 1

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

func (r *handlerRegistry) add(event EventType, fn func(EventContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[event] = append(r.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

// --- Scene-level event registration ---

// OnPickUp registers a callback fired when a pointer press grabs an entity.
func (w *World) OnPickUp(fn func(EventContext)) CallbackHandle {
	return w.handlers.add(EventPickUp, fn)
}

// OnMove registers a callback fired when the dragged entity follows the pointer.
func (w *World) OnMove(fn func(EventContext)) CallbackHandle {
	return w.handlers.add(EventMove, fn)
}

// OnDrop registers a callback fired when the dragged entity is released.
func (w *World) OnDrop(fn func(EventContext)) CallbackHandle {
	return w.handlers.add(EventDrop, fn)
}

// OnTrash registers a callback fired just before a trashed entity is removed.
func (w *World) OnTrash(fn func(EventContext)) CallbackHandle {
	return w.handlers.add(EventTrash, fn)
}

// OnSpawn registers a callback fired after an entity is added.
func (w *World) OnSpawn(fn func(EventContext)) CallbackHandle {
	return w.handlers.add(EventSpawn, fn)
}

// --- Hit testing ---

// hitTest returns the entity nearest the viewer at (wx, wy): the highest Z
// wins, and ties go to the later entity, which draws on top.
func (w *World) hitTest(wx, wy float64) *Entity {
	var best *Entity
	for _, e := range w.entities {
		if !e.Contains(wx, wy) {
			continue
		}
		if best == nil || e.Z >= best.Z {
			best = e
		}
	}
	return best
}

// EntityAt returns the entity under the given screen pixel, or nil.
func (w *World) EntityAt(sx, sy float64) *Entity {
	wx, wy := w.cam.ScreenToWorld(sx, sy)
	return w.hitTest(wx, wy)
}

// --- Drag-and-drop state machine ---

// PointerDown grabs the entity under (sx, sy). A previous selection is
// released first, so at most one entity is ever dragged.
func (w *World) PointerDown(pointerID int, sx, sy float64) {
	wx, wy := w.cam.ScreenToWorld(sx, sy)
	hit := w.hitTest(wx, wy)
	if hit == nil {
		return
	}
	if w.selection.entity != nil {
		w.release()
	}

	hit.Dragged = true
	hit.VX = 0
	hit.VY = 0
	hit.Grounded = false
	w.selection = selection{entity: hit, pointerID: pointerID, screenX: sx, screenY: sy}
	w.fire(EventPickUp, hit, pointerID, sx, sy)
}

// PointerMove moves the dragged entity to the world point under (sx, sy).
// Moves from pointers that do not own the selection are ignored.
func (w *World) PointerMove(pointerID int, sx, sy float64) {
	sel := &w.selection
	if sel.entity == nil || sel.pointerID != pointerID {
		return
	}
	sel.screenX, sel.screenY = sx, sy
	w.followPointer()
	w.fire(EventMove, sel.entity, pointerID, sx, sy)
}

// PointerUp drops the dragged entity if pointerID owns it.
func (w *World) PointerUp(pointerID int) {
	if w.selection.entity == nil || w.selection.pointerID != pointerID {
		return
	}
	w.release()
}

// release returns the selected entity to physics with zero vertical velocity.
// Releasing never imparts throw velocity.
func (w *World) release() {
	sel := w.selection
	e := sel.entity
	e.Dragged = false
	e.VY = 0
	w.selection = selection{}
	w.fire(EventDrop, e, sel.pointerID, sel.screenX, sel.screenY)
}

// followPointer places the dragged entity at the clamped world point under
// the last pointer position.
func (w *World) followPointer() {
	sel := &w.selection
	wx, wy := w.cam.ScreenToWorld(sel.screenX, sel.screenY)
	lo, hi := w.horizontalLimits(sel.entity.HalfW)
	sel.entity.X = clamp(wx, lo, hi)
	sel.entity.Y = wy
}

// edgeScroll pans the camera while the dragged pointer sits within
// EdgeMargin pixels of either screen edge. The entity is re-mapped so it
// stays under the pointer.
func (w *World) edgeScroll() {
	sel := &w.selection
	if sel.entity == nil || w.cfg.EdgeMargin <= 0 || w.cfg.ScrollSpeed <= 0 {
		return
	}
	vp := w.cam.Viewport
	x := sel.screenX - vp.X
	prev := w.cam.X
	switch {
	case x < w.cfg.EdgeMargin:
		w.cam.Pan(-w.cfg.ScrollSpeed)
	case x > vp.Width-w.cfg.EdgeMargin:
		w.cam.Pan(w.cfg.ScrollSpeed)
	}
	if w.cam.X != prev {
		w.followPointer()
	}
}

// --- Input processing ---

// processInput feeds either one injected event or the polled samples through
// the pointer state machine. Injected events take priority.
func (w *World) processInput() {
	if w.processInjectedInput() {
		return
	}
	if w.input == nil {
		return
	}
	w.sampleBuf = w.input.Poll(w.sampleBuf[:0])
	for _, s := range w.sampleBuf {
		w.processPointer(s.ID, s.X, s.Y, s.Pressed)
	}
}

// processPointer runs the press/move/release transitions for one pointer.
func (w *World) processPointer(pointerID int, sx, sy float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &w.pointers[pointerID]
	moved := sx != ps.lastX || sy != ps.lastY

	switch {
	case pressed && !ps.down:
		ps.down = true
		w.PointerDown(pointerID, sx, sy)
	case !pressed && ps.down:
		ps.down = false
		if moved {
			w.PointerMove(pointerID, sx, sy)
		}
		w.PointerUp(pointerID)
	case pressed && ps.down && moved:
		w.PointerMove(pointerID, sx, sy)
	}
	ps.lastX = sx
	ps.lastY = sy
}

// --- Event dispatch ---

func (w *World) fire(event EventType, e *Entity, pointerID int, sx, sy float64) {
	ctx := EventContext{
		Type:      event,
		Entity:    e,
		EntityID:  e.ID,
		UserData:  e.UserData,
		PointerID: pointerID,
		ScreenX:   sx,
		ScreenY:   sy,
		WorldX:    e.X,
		WorldY:    e.Y,
	}
	for _, h := range w.handlers.byType[event] {
		h.fn(ctx)
	}
	w.emitInteractionEvent(ctx)
}

func (w *World) fireTrash(e *Entity) {
	sel := w.selection
	w.fire(EventTrash, e, sel.pointerID, sel.screenX, sel.screenY)
}

// --- ECS bridge ---

func (w *World) emitInteractionEvent(ctx EventContext) {
	if w.store == nil {
		return
	}
	w.store.EmitEvent(InteractionEvent{
		Type:      ctx.Type,
		EntityID:  ctx.EntityID,
		PointerID: ctx.PointerID,
		ScreenX:   ctx.ScreenX,
		ScreenY:   ctx.ScreenY,
		WorldX:    ctx.WorldX,
		WorldY:    ctx.WorldY,
	})
}
