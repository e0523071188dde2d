package sim

import (
	"image/color"
	"math"
	"time"
)

// Side identifies the wall a body hit.
type Side uint8

const (
	SideFloor Side = iota
	SideCeiling
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideFloor:
		return "floor"
	case SideCeiling:
		return "ceiling"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// ImpactEvent records a friction-enabled wall hit at its contact point.
type ImpactEvent struct {
	X, Y  float64
	Speed float64
	Side  Side
}

// Bounds is the rectangle bodies bounce inside, with the origin top-left.
type Bounds struct {
	Width, Height float64
}

// Body is the kinematic state shared by balls, circles and particles.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Color  color.Color

	// Refreshed once per update by Refresh.
	Disp     Vec2
	Speed    float64
	Rotation float64

	prevPos  Vec2
	lastTime time.Time
	dtMs     float64
}

func newBody(pos Vec2, radius float64, c color.Color, now time.Time) Body {
	return Body{
		Pos:      pos,
		Radius:   radius,
		Color:    c,
		Rotation: math.Pi * 0.5,
		prevPos:  pos,
		lastTime: now,
	}
}

// DtMs is the wall-clock time between the last two refreshes, in milliseconds.
func (b *Body) DtMs() float64 { return b.dtMs }

// ResolveBoundary checks floor, ceiling, left and right in that order. The
// checks are independent, so a body in a corner is corrected twice in one
// step. Particles run the checks but never respond to them. With
// useFriction each hit bleeds energy and is reported through emit.
func (b *Body) ResolveBoundary(bounds Bounds, isParticle, useFriction bool, friction, frictionMultiplier float64, emit func(ImpactEvent)) {
	if b.Pos.Y+b.Radius > bounds.Height {
		b.hit(SideFloor, bounds, isParticle, useFriction, friction, frictionMultiplier, emit)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.hit(SideCeiling, bounds, isParticle, useFriction, friction, frictionMultiplier, emit)
	}
	if b.Pos.X-b.Radius < 0 {
		b.hit(SideLeft, bounds, isParticle, useFriction, friction, frictionMultiplier, emit)
	}
	if b.Pos.X+b.Radius > bounds.Width {
		b.hit(SideRight, bounds, isParticle, useFriction, friction, frictionMultiplier, emit)
	}
}

func (b *Body) hit(side Side, bounds Bounds, isParticle, useFriction bool, friction, frictionMultiplier float64, emit func(ImpactEvent)) {
	if isParticle {
		return
	}

	var contact Vec2
	switch side {
	case SideFloor:
		b.Pos.Y = bounds.Height - b.Radius
		b.Vel.Y = -b.Vel.Y
		if useFriction {
			b.Vel.Y /= friction * frictionMultiplier
			b.Vel.X /= friction
		}
		contact = Vec2{b.Pos.X, b.Pos.Y + b.Radius}
	case SideCeiling:
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
		if useFriction {
			b.Vel.Y /= friction * frictionMultiplier
			b.Vel.X /= friction
		}
		contact = Vec2{b.Pos.X, b.Pos.Y - b.Radius}
	case SideLeft:
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
		if useFriction {
			b.Vel.Y /= friction
			b.Vel.X /= friction * frictionMultiplier
		}
		contact = Vec2{b.Pos.X - b.Radius, b.Pos.Y}
	case SideRight:
		b.Pos.X = bounds.Width - b.Radius
		b.Vel.X = -b.Vel.X
		if useFriction {
			b.Vel.Y /= friction
			b.Vel.X /= friction * frictionMultiplier
		}
		contact = Vec2{b.Pos.X + b.Radius, b.Pos.Y}
	}

	if useFriction && emit != nil {
		emit(ImpactEvent{X: contact.X, Y: contact.Y, Speed: b.Speed, Side: side})
	}
}

func (b *Body) ApplyGravity(g float64) {
	b.Vel.Y += g
}

// Integrate moves the body one frame. Velocity is in pixels per frame, so
// the simulation speed follows the frame rate.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Refresh recomputes the per-frame derived values: displacement and elapsed
// time since the last refresh, the distorted speed and the rotation.
func (b *Body) Refresh(now time.Time, distortion float64) {
	b.dtMs = float64(now.Sub(b.lastTime)) / float64(time.Millisecond)
	b.lastTime = now
	b.Disp = b.Pos.Sub(b.prevPos)
	b.prevPos = b.Pos

	b.Speed = distortion * b.Vel.Manhattan()

	switch {
	case b.Vel.X != 0 && b.Vel.Y != 0:
		b.Rotation = math.Atan(b.Vel.Y / b.Vel.X)
	case b.Vel.X != 0:
		b.Rotation = 0
	default:
		b.Rotation = math.Pi * 0.5
	}
}

func (b *Body) Render(cv Canvas) {
	cv.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, b.Color)
}
