package sim

import (
	"image/color"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/config"
)

// Circle is a background decoration that drifts at a constant speed and
// bounces off the walls without losing energy.
type Circle struct {
	Body
}

func NewCircle(pos Vec2, radius float64, c color.Color, vel Vec2, now time.Time) *Circle {
	circle := &Circle{Body: newBody(pos, radius, c, now)}
	circle.Vel = vel
	return circle
}

func (c *Circle) Update(f *Frame) {
	c.ResolveBoundary(f.Bounds, false, false, 0, 0, nil)
	c.Integrate()
}

func (c *Circle) Draw(cv Canvas, _ *config.Config) {
	c.Render(cv)
}
