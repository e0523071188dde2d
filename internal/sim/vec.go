package sim

import "math"

// Vec2 is a point or a displacement on the canvas, in pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dist(o Vec2) float64  { return math.Hypot(o.X-v.X, o.Y-v.Y) }
func (v Vec2) Manhattan() float64   { return math.Abs(v.X) + math.Abs(v.Y) }

// pointInCircle reports whether p lies strictly inside the circle.
func pointInCircle(p, center Vec2, radius float64) bool {
	return p.Dist(center) < radius
}
