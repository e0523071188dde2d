package sim

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/config"
)

// Particle is a short-lived spark thrown off a wall by a fast impact.
type Particle struct {
	Body
	Alpha     float64
	Side      Side
	SpawnedAt time.Time
	ExpiresAt time.Time
}

// reset reinitialises p, which may be a recycled particle, as a fresh spark
// flying away from side.
func (p *Particle) reset(pos Vec2, length float64, c color.Color, side Side, rng *rand.Rand, now time.Time, life time.Duration) {
	*p = Particle{
		Body:      newBody(pos, length, c, now),
		Alpha:     1,
		Side:      side,
		SpawnedAt: now,
		ExpiresAt: now.Add(life),
	}
	p.Vel = sparkVelocity(side, rng)
}

// sparkVelocity biases the launch direction away from the wall that was hit
// and spreads it along the wall.
func sparkVelocity(side Side, rng *rand.Rand) Vec2 {
	along := (rng.Float64() - 0.5) * 4
	away := rng.Float64() + 0.1

	switch side {
	case SideFloor:
		return Vec2{along, -away}
	case SideCeiling:
		return Vec2{along, away}
	case SideLeft:
		return Vec2{away, along}
	default:
		return Vec2{-away, along}
	}
}

// Live reports whether the particle is still within its lifetime at now.
func (p *Particle) Live(now time.Time) bool {
	return now.Before(p.ExpiresAt)
}

// Update lets the particle leave the canvas freely; gravity is damped by
// the configured divisor.
func (p *Particle) Update(f *Frame) {
	cfg := f.Cfg
	p.ResolveBoundary(f.Bounds, true, true, cfg.Friction, cfg.FrictionMultiplier, nil)
	p.ApplyGravity(cfg.Gravity / cfg.ParticleGravityDivisor)
	p.Integrate()
	p.Refresh(f.Now, cfg.DistortionEffect)
}

// Draw renders a thin streak along the velocity.
func (p *Particle) Draw(cv Canvas, cfg *config.Config) {
	cv.FillEllipse(p.Pos.X, p.Pos.Y, p.Radius, cfg.ParticleThickness, p.Rotation, p.Color)
}
