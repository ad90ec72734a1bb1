package dropzone

import "math"

// stepPhysics advances every entity by one tick. Dragged entities are skipped
// entirely; their position is owned by the pointer.
func (w *World) stepPhysics() {
	for _, e := range w.entities {
		if e.Dragged {
			continue
		}
		integrate(&w.cfg, e)
		w.clampHorizontal(e)
	}
}

// integrate applies gravity, moves the entity and resolves floor contact.
// One symplectic Euler step per tick; there is no dt correction.
func integrate(cfg *Config, e *Entity) {
	switch cfg.Floor {
	case FloorRest:
		integrateRest(cfg, e)
	default:
		integrateBounce(cfg, e)
	}
}

// integrateBounce bounces on the floor until the rebound speed drops to the
// threshold, then latches Grounded and suspends gravity.
func integrateBounce(cfg *Config, e *Entity) {
	if !e.Grounded {
		e.VY += cfg.Gravity
	}
	e.X += e.VX
	e.Y += e.VY

	if e.Bottom() <= cfg.FloorY && e.VY <= 0 {
		e.Y = cfg.FloorY + e.HalfH
		if math.Abs(e.VY) > cfg.BounceThreshold {
			e.VY = -e.VY * cfg.BounceDamping
		} else {
			e.VY = 0
			e.Grounded = true
		}
	}

	if e.Grounded {
		e.VX *= cfg.Friction
	}
}

// integrateRest only moves entities above the floor. An entity that crosses
// it is snapped onto it; anything at or below the floor is held still.
// Contact compares the centre against the snap height so a snapped entity
// stays in contact on later ticks.
func integrateRest(cfg *Config, e *Entity) {
	restY := cfg.FloorY + e.HalfH
	if cfg.FloorUsesCenter {
		restY = cfg.FloorY
	}
	if e.Y <= restY {
		e.VY = 0
		return
	}

	e.VY += cfg.Gravity
	e.X += e.VX
	e.Y += e.VY

	if e.Y <= restY {
		e.Y = restY
		e.VY *= -cfg.BounceDamping
	}
}

// horizontalLimits returns the allowed range of an entity centre with the
// given half width.
func (w *World) horizontalLimits(halfW float64) (lo, hi float64) {
	switch w.cfg.Bounds {
	case BoundsWorld:
		lo, hi = w.cfg.WorldLeft()+halfW, w.cfg.WorldRight()-halfW
	default:
		lo, hi = w.cam.X+w.cam.Left+halfW, w.cam.X+w.cam.Right-halfW
	}
	if lo > hi {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo, hi
}

// clampHorizontal keeps the entity inside its horizontal limits. Arena walls
// reflect VX with attenuation; world limits are a hard stop.
func (w *World) clampHorizontal(e *Entity) {
	lo, hi := w.horizontalLimits(e.HalfW)
	if e.X <= hi && e.X >= lo {
		return
	}
	e.X = clamp(e.X, lo, hi)
	if w.cfg.Bounds == BoundsArena {
		e.VX *= -w.cfg.WallRestitution
	} else {
		e.VX = 0
	}
}

// depthFor maps a height to a depth: lower on screen is closer to the viewer.
// Heights at or above the reference fall back to the default depth.
func depthFor(cfg *Config, y float64) float64 {
	if y < cfg.DepthReference {
		return cfg.DepthReference - y
	}
	return cfg.DefaultDepth
}

// updateDepths recomputes Z for every live entity.
func (w *World) updateDepths() {
	for _, e := range w.entities {
		e.Z = depthFor(&w.cfg, e.Y)
	}
}

// checkTrash removes the dragged entity if it is inside the trash zone. This
// runs in the frame pass, so removal lags the pointer by one tick.
func (w *World) checkTrash() {
	tz := w.cfg.TrashZone
	sel := w.selection.entity
	if tz == nil || sel == nil {
		return
	}
	if !tz.Contains(sel.X, sel.Y) {
		return
	}
	w.fireTrash(sel)
	w.Remove(sel)
	w.logger.Info("entity trashed", zapEntity(sel)...)
}
