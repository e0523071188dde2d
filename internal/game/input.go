package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/bounce-visualization/internal/sim"
)

// pointerTarget receives pointer samples. sim.World implements it.
type pointerTarget interface {
	PointerDown(p sim.Vec2) bool
	PointerMove(p sim.Vec2)
	PointerUp()
}

type pointerSource uint8

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// pointerTracker turns polled mouse and touch state into down/move/up
// samples. Only one pointer drags at a time: the first press that lands on
// a ball owns the drag until it is released.
type pointerTracker struct {
	source  pointerSource
	touchID ebiten.TouchID
	last    sim.Vec2

	touchIDs []ebiten.TouchID
}

func (t *pointerTracker) press(target pointerTarget, src pointerSource, id ebiten.TouchID, p sim.Vec2) {
	if t.source != sourceNone {
		return
	}
	if target.PointerDown(p) {
		t.source = src
		t.touchID = id
		t.last = p
	}
}

// move forwards p only when the pointer actually moved.
func (t *pointerTracker) move(target pointerTarget, p sim.Vec2) {
	if t.source == sourceNone || p == t.last {
		return
	}
	t.last = p
	target.PointerMove(p)
}

func (t *pointerTracker) release(target pointerTarget) {
	if t.source == sourceNone {
		return
	}
	t.source = sourceNone
	target.PointerUp()
}

// reset forgets the active pointer, e.g. after the scene was rebuilt.
func (t *pointerTracker) reset() {
	t.source = sourceNone
}

// poll reads this tick's mouse and touch state.
func (t *pointerTracker) poll(target pointerTarget) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.press(target, sourceMouse, 0, cursor())
	}
	t.touchIDs = inpututil.AppendJustPressedTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		t.press(target, sourceTouch, id, touch(id))
	}

	switch t.source {
	case sourceMouse:
		t.move(target, cursor())
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			t.release(target)
		}
	case sourceTouch:
		if inpututil.IsTouchJustReleased(t.touchID) {
			t.release(target)
			return
		}
		t.move(target, touch(t.touchID))
	}
}

func cursor() sim.Vec2 {
	x, y := ebiten.CursorPosition()
	return sim.Vec2{X: float64(x), Y: float64(y)}
}

func touch(id ebiten.TouchID) sim.Vec2 {
	x, y := ebiten.TouchPosition(id)
	return sim.Vec2{X: float64(x), Y: float64(y)}
}
