package dropzone

import (
	"time"

	"go.uber.org/zap"
)

// frameStats holds per-tick timing and state. Only populated in debug mode.
type frameStats struct {
	tick     uint64
	stepTime time.Duration
	entities int
	dragging bool
	cameraX  float64
}

// debugLog writes frame stats at debug level.
func (w *World) debugLog(stats frameStats) {
	if !w.debug {
		return
	}
	w.logger.Debug("frame",
		zap.Uint64("tick", stats.tick),
		zap.Duration("step", stats.stepTime),
		zap.Int("entities", stats.entities),
		zap.Bool("dragging", stats.dragging),
		zap.Float64("cameraX", stats.cameraX),
	)
}

// zapEntity returns the standard log fields for an entity.
func zapEntity(e *Entity) []zap.Field {
	return []zap.Field{
		zap.Uint32("id", e.ID),
		zap.String("name", e.Name),
		zap.Float64("x", e.X),
		zap.Float64("y", e.Y),
	}
}
