package dropzone

// syntheticPointerEvent represents a single injected pointer event in screen
// pixels. It is converted to world coordinates through the camera exactly
// like real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update.
func (w *World) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (w *World) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (w *World) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is 2.
func (w *World) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (w *World) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// pointer 0. Returns true if an event was consumed (polled input is skipped).
func (w *World) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(0, evt.screenX, evt.screenY, evt.pressed)
	return true
}
