package dropzone

import "github.com/hajimehoshi/ebiten/v2"

// ebitenInput polls the mouse (pointer 0) and touches (pointers 1-9).
type ebitenInput struct {
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers]PointerSample
	prevTouchIDs []ebiten.TouchID
}

// NewEbitenInput returns an InputSource reading Ebitengine's mouse and touch
// state. Only the left mouse button drags.
func NewEbitenInput() InputSource {
	return &ebitenInput{}
}

// Poll implements InputSource.
func (in *ebitenInput) Poll(buf []PointerSample) []PointerSample {
	mx, my := ebiten.CursorPosition()
	buf = append(buf, PointerSample{
		ID:      0,
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s := PointerSample{ID: slot, X: float64(tx), Y: float64(ty), Pressed: true}
		in.touchLast[slot] = s
		buf = append(buf, s)
	}

	// Touches that ended this frame release at their last position.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !active[i] {
			s := in.touchLast[i]
			s.Pressed = false
			buf = append(buf, s)
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
	return buf
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *ebitenInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}
