package dropzone

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on an Entity simultaneously.
// Create one via TweenScale, TweenAlpha or TweenPosition and call Update(dt)
// each frame; World does this for the tweens it starts itself. If the target
// entity is removed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target has been removed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsRemoved() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenScale animates e.Scale to the target value.
func TweenScale(e *Entity, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Scale), float32(to), duration, fn)
	g.fields[0] = &e.Scale
	return g
}

// TweenAlpha animates e.Alpha to the target value.
func TweenAlpha(e *Entity, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Alpha), float32(to), duration, fn)
	g.fields[0] = &e.Alpha
	return g
}

// TweenPosition animates e.X and e.Y. Physics still runs on the entity, so
// this is only useful on dragged entities or in a world without gravity.
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), duration, fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// AddTween registers g with the world so it advances on every Update.
func (w *World) AddTween(g *TweenGroup) {
	w.tweens = append(w.tweens, g)
}
