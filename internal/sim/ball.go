package sim

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/config"
)

// BallState is the drag state of a ball.
type BallState uint8

const (
	// BallFree is simulated normally.
	BallFree BallState = iota
	// BallHeld follows the pointer and skips gravity and wall checks.
	BallHeld
)

// minVelX is the horizontal speed below which a free ball stops rolling.
const minVelX = 0.1

// Ball is the user-draggable body.
type Ball struct {
	Body
	Offset Vec2
	State  BallState
}

func NewBall(pos Vec2, radius float64, c color.Color, now time.Time) *Ball {
	return &Ball{Body: newBody(pos, radius, c, now)}
}

func (b *Ball) Held() bool { return b.State == BallHeld }

// Contains reports whether p lies inside the ball.
func (b *Ball) Contains(p Vec2) bool {
	return pointInCircle(p, b.Pos, b.Radius)
}

// Grab picks the ball up when p lands inside it. The ball stops dead and
// remembers where it was grabbed.
func (b *Ball) Grab(p Vec2) bool {
	if !b.Contains(p) {
		return false
	}
	b.State = BallHeld
	b.Vel = Vec2{}
	b.Offset = p.Sub(b.Pos)
	return true
}

// Drag moves a held ball under the pointer. Its velocity tracks the
// displacement of the last refreshed frame so the release carries the speed
// of the final flick.
func (b *Ball) Drag(p Vec2, throwingPower float64) {
	if b.State != BallHeld {
		return
	}
	b.Pos = p.Sub(b.Offset)
	b.Vel = b.fling(throwingPower)
}

// Release drops a held ball with the fling velocity of the last frame.
func (b *Ball) Release(throwingPower float64) {
	if b.State != BallHeld {
		return
	}
	b.Vel = b.fling(throwingPower)
	b.State = BallFree
}

func (b *Ball) fling(throwingPower float64) Vec2 {
	if b.dtMs <= 0 {
		return Vec2{}
	}
	return b.Disp.Scale(throwingPower / b.dtMs)
}

func (b *Ball) Update(f *Frame) {
	if b.State == BallFree {
		cfg := f.Cfg
		b.ResolveBoundary(f.Bounds, false, true, cfg.Friction, cfg.FrictionMultiplier, f.Emit)
		b.ApplyGravity(cfg.Gravity)

		if math.Abs(b.Vel.X) < minVelX {
			b.Vel.X = 0
		}

		b.Integrate()
	}
	b.Refresh(f.Now, f.Cfg.DistortionEffect)
}

// Draw squashes the ball along its direction of travel, never thinner than
// the configured minimum radius.
func (b *Ball) Draw(cv Canvas, cfg *config.Config) {
	cv.FillEllipse(b.Pos.X, b.Pos.Y, b.Radius, math.Max(cfg.MinRadius, b.Radius-b.Speed), b.Rotation, b.Color)
}
