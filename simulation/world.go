package simulation

import (
	"math/rand"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/meghashyamc/bee/geometry"
	"github.com/meghashyamc/bee/logger"
)

// fadeCutoff is the tint level below which a particle is dropped.
const fadeCutoff = 0.05

var palette = []Color{
	NewColor(1, 0.85, 0.2),
	NewColor(0.3, 0.8, 1),
	NewColor(1, 0.35, 0.45),
	NewColor(0.55, 1, 0.4),
	NewColor(0.8, 0.5, 1),
}

type Settings struct {
	Bounds       Bounds
	Gravity      float64 // pixels per second squared, positive is down
	Restitution  float64
	Fade         float64
	LaunchScale  float64 // drag length is divided by this to get launch speed
	MaxParticles int     // zero means unbounded
}

type World struct {
	settings  Settings
	gravity   Point
	particles []Particle
	spawned   int
	logger    logger.Logger
}

func NewWorld(settings Settings, log logger.Logger) *World {
	if settings.LaunchScale == 0 {
		settings.LaunchScale = 1
	}

	w := &World{
		settings:  settings,
		gravity:   NewPoint(0, settings.Gravity),
		particles: make([]Particle, 0),
		logger:    log,
	}

	w.logger.Info("world initialized", "bounds", settings.Bounds, "gravity", w.gravity.String(), "max_particles", settings.MaxParticles)
	return w
}

func (w *World) Bounds() Bounds {
	return w.settings.Bounds
}

func (w *World) Gravity() Point {
	return w.gravity
}

// FlipGravity reverses the direction of gravity.
func (w *World) FlipGravity() {
	w.gravity = w.gravity.Neg()
	w.logger.Debug("gravity flipped", "gravity", w.gravity.String())
}

// Spawn adds p, evicting the oldest particle when the world is full.
func (w *World) Spawn(p Particle) {
	if limit := w.settings.MaxParticles; limit > 0 && len(w.particles) >= limit {
		w.particles = w.particles[len(w.particles)-limit+1:]
	}
	w.particles = append(w.particles, p)
	w.spawned++
}

// Launch spawns a particle at from, moving towards to. The velocity is the drag
// vector divided by the launch scale.
func (w *World) Launch(from, to Point) Particle {
	p := Particle{
		Position: from,
		Velocity: to.Sub(from).Div(geometry.NewFloatingPoint(w.settings.LaunchScale)),
		Tint:     w.nextTint(),
	}
	w.Spawn(p)
	w.logger.Debug("particle launched", "position", p.Position.String(), "velocity", p.Velocity.String())
	return p
}

// Emit spawns a particle at origin with a random upward velocity.
func (w *World) Emit(origin Point, rng *rand.Rand) Particle {
	p := Particle{
		Position: origin,
		Velocity: NewPoint((rng.Float64()-0.5)*300, -400-rng.Float64()*200),
		Tint:     w.nextTint(),
	}
	if w.gravity.Y().Less(geometry.NewFloatingPoint(0.0)) {
		p.Velocity = geometry.NewVector2(p.Velocity.X(), p.Velocity.Y().Neg())
	}
	w.Spawn(p)
	return p
}

// Step advances every particle by dt seconds and drops the ones that have faded.
func (w *World) Step(dt float64) {
	if len(w.particles) == 0 {
		return
	}

	next := make([]Particle, len(w.particles))
	parallel.For(len(w.particles), func(i, _ int) {
		next[i] = w.particles[i].
			Step(w.gravity, w.settings.Fade, dt).
			Bounce(w.settings.Bounds, w.settings.Restitution)
	})

	kept := next[:0]
	for _, p := range next {
		if !p.Faded(fadeCutoff) {
			kept = append(kept, p)
		}
	}

	if dropped := len(next) - len(kept); dropped > 0 {
		w.logger.Debug("particles faded", "dropped", dropped, "remaining", len(kept))
	}
	w.particles = kept
}

// Centroid is the mean particle position, or the zero vector for an empty world.
func (w *World) Centroid() Point {
	if len(w.particles) == 0 {
		return geometry.ZeroVector2[float64]()
	}

	sum := geometry.ZeroVector2[float64]()
	for _, p := range w.particles {
		sum = sum.Add(p.Position)
	}
	return sum.Div(geometry.NewFloatingPoint(float64(len(w.particles))))
}

func (w *World) Particles() []Particle {
	out := make([]Particle, len(w.particles))
	copy(out, w.particles)
	return out
}

func (w *World) Len() int {
	return len(w.particles)
}

func (w *World) Clear() {
	w.logger.Debug("world cleared", "dropped", len(w.particles))
	w.particles = w.particles[:0]
}

// Restore replaces the world's particles, keeping the newest ones if there are too many.
func (w *World) Restore(particles []Particle) {
	if limit := w.settings.MaxParticles; limit > 0 && len(particles) > limit {
		particles = particles[len(particles)-limit:]
	}
	w.particles = append(w.particles[:0], particles...)
	w.logger.Info("world restored", "particles", len(w.particles))
}

func (w *World) nextTint() Color {
	return palette[w.spawned%len(palette)]
}
