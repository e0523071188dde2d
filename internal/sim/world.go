package sim

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/config"
)

// maxPooled caps how many expired particles are kept for reuse.
const maxPooled = 4096

// Entity is anything the world steps and draws each frame.
type Entity interface {
	Update(f *Frame)
	Draw(cv Canvas, cfg *config.Config)
}

// Frame is the per-update context handed to every entity.
type Frame struct {
	Cfg    *config.Config
	Bounds Bounds
	Now    time.Time

	emit func(ImpactEvent)
}

// Emit forwards an impact to the particle emitter, if any.
func (f *Frame) Emit(ev ImpactEvent) {
	if f.emit != nil {
		f.emit(ev)
	}
}

// Stats is a snapshot of the scene for logs and the HUD.
type Stats struct {
	Balls     int
	Circles   int
	Particles int
	Emitted   int
	Frame     uint64
	Resets    int
}

// World owns every body and particle of the scene. It is not safe for
// concurrent use: input, stepping and drawing must happen on one goroutine.
type World struct {
	cfg     *config.Config
	palette config.Palette
	bounds  Bounds
	clock   Clock
	rng     *rand.Rand

	bodies    []Entity
	balls     []*Ball
	particles []*Particle
	pool      []*Particle
	drag      *Ball

	now   time.Time
	stats Stats
}

// NewWorld builds and populates a scene of the given size.
func NewWorld(cfg *config.Config, width, height float64, clock Clock, rng *rand.Rand) (*World, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}

	w := &World{
		bounds: Bounds{Width: width, Height: height},
		clock:  clock,
		rng:    rng,
	}
	if err := w.Reset(cfg); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset discards every body and particle, along with any drag in progress,
// and repopulates the scene from cfg. On error the scene is left unchanged.
func (w *World) Reset(cfg *config.Config) error {
	palette, err := cfg.Palette()
	if err != nil {
		return fmt.Errorf("reset world: %w", err)
	}

	w.cfg = cfg
	w.palette = palette
	w.now = w.clock.Now()

	clear(w.bodies)
	clear(w.particles)
	w.bodies = w.bodies[:0]
	w.balls = nil
	w.particles = w.particles[:0]
	w.drag = nil

	for range cfg.CircleCount {
		w.bodies = append(w.bodies, w.spawnCircle())
	}
	for range cfg.BallCount {
		ball := w.spawnBall()
		w.balls = append(w.balls, ball)
		w.bodies = append(w.bodies, ball)
	}

	w.stats.Balls = cfg.BallCount
	w.stats.Circles = cfg.CircleCount
	w.stats.Particles = 0
	w.stats.Resets++
	return nil
}

func (w *World) spawnCircle() *Circle {
	cfg := w.cfg
	pos := Vec2{w.rng.Float64() * w.bounds.Width, w.rng.Float64() * w.bounds.Height}
	radius := w.rng.Float64()*cfg.MaxCircleRadius + cfg.MinCircleRadius
	c := w.palette.Circles[w.rng.IntN(len(w.palette.Circles))]
	vel := Vec2{
		(w.rng.Float64() - 0.5) * cfg.CircleSpeed,
		(w.rng.Float64() - 0.5) * cfg.CircleSpeed,
	}
	return NewCircle(pos, radius, c, vel, w.now)
}

// spawnBall drops a ball at a random x, resting on the floor.
func (w *World) spawnBall() *Ball {
	cfg := w.cfg
	pos := Vec2{w.rng.Float64() * (w.bounds.Width - cfg.Radius), w.bounds.Height - cfg.Radius}
	return NewBall(pos, cfg.Radius, w.palette.Ball, w.now)
}

// Resize changes the scene bounds and repopulates it. Unchanged bounds are
// a no-op.
func (w *World) Resize(width, height float64) error {
	if width == w.bounds.Width && height == w.bounds.Height {
		return nil
	}
	w.bounds = Bounds{Width: width, Height: height}
	return w.Reset(w.cfg)
}

// Update advances the scene one frame. Expired particles are swept first,
// then every body is stepped, then every particle, including the ones
// thrown off by this frame's impacts.
func (w *World) Update() {
	w.now = w.clock.Now()
	w.sweep(w.now)

	f := &Frame{Cfg: w.cfg, Bounds: w.bounds, Now: w.now, emit: w.emit}
	for _, b := range w.bodies {
		b.Update(f)
	}
	for _, p := range w.particles {
		p.Update(f)
	}

	w.stats.Frame++
	w.stats.Particles = len(w.particles)
}

// Render clears cv and draws bodies, then particles on top.
func (w *World) Render(cv Canvas) {
	cv.Clear(w.palette.Background)
	for _, b := range w.bodies {
		b.Draw(cv, w.cfg)
	}
	for _, p := range w.particles {
		p.Draw(cv, w.cfg)
	}
}

// PointerDown hands the drag to the topmost ball under p, if any.
func (w *World) PointerDown(p Vec2) bool {
	if w.drag != nil {
		return true
	}
	for i := len(w.balls) - 1; i >= 0; i-- {
		if w.balls[i].Grab(p) {
			w.drag = w.balls[i]
			return true
		}
	}
	return false
}

// PointerMove drags the held ball, if any.
func (w *World) PointerMove(p Vec2) {
	if w.drag != nil {
		w.drag.Drag(p, w.cfg.ThrowingPower)
	}
}

// PointerUp throws the held ball, if any.
func (w *World) PointerUp() {
	if w.drag != nil {
		w.drag.Release(w.cfg.ThrowingPower)
		w.drag = nil
	}
}

// Dragging reports whether a ball is currently held.
func (w *World) Dragging() bool { return w.drag != nil }

func (w *World) Bounds() Bounds { return w.bounds }

func (w *World) Stats() Stats { return w.stats }

func (w *World) Balls() []*Ball { return w.balls }

func (w *World) Particles() []*Particle { return w.particles }
