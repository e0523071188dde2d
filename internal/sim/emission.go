package sim

import (
	"math"
	"time"
)

// EmissionCount is the number of particles an impact at speed throws off:
// none at or below the sensitivity threshold, then one more for every unit
// of speed above it on top of the base count.
func EmissionCount(speed, sensitivity float64, base int) int {
	if speed <= sensitivity {
		return 0
	}
	n := math.Floor(speed - sensitivity + float64(base))
	if n <= 0 {
		return 0
	}
	return int(n)
}

// emit spawns the particle burst for one impact onto the live collection.
func (w *World) emit(ev ImpactEvent) {
	cfg := w.cfg
	n := EmissionCount(ev.Speed, cfg.ParticleSensitivity, cfg.ParticleCount)
	if n == 0 {
		return
	}

	life := time.Duration(cfg.ParticleDespawnMs) * time.Millisecond
	pos := Vec2{ev.X, ev.Y}
	colors := w.palette.Particles
	for range n {
		p := w.acquireParticle()
		p.reset(pos, cfg.ParticleLength, colors[w.rng.IntN(len(colors))], ev.Side, w.rng, w.now, life)
		w.particles = append(w.particles, p)
	}
	w.stats.Emitted += n
}

// acquireParticle reuses an expired particle when one is available.
func (w *World) acquireParticle() *Particle {
	if n := len(w.pool); n > 0 {
		p := w.pool[n-1]
		w.pool[n-1] = nil
		w.pool = w.pool[:n-1]
		return p
	}
	return &Particle{}
}

// sweep drops every particle whose lifetime is over, keeping the rest in
// spawn order, and returns the expired ones to the pool.
func (w *World) sweep(now time.Time) {
	live := w.particles[:0]
	for _, p := range w.particles {
		if p.Live(now) {
			live = append(live, p)
			continue
		}
		if len(w.pool) < maxPooled {
			w.pool = append(w.pool, p)
		}
	}
	clear(w.particles[len(live):])
	w.particles = live
}
