package simulation

import (
	"math"

	"github.com/meghashyamc/bee/geometry"
)

type (
	Scalar = geometry.FloatingPoint[float64]
	Point  = geometry.Vector2[float64]
	Color  = geometry.Vector3[float32]
)

// Bounds is the playing field, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Particle is a point mass with a fading tint. It is never mutated in place.
type Particle struct {
	Position Point
	Velocity Point
	Tint     Color
}

func NewPoint(x, y float64) Point {
	return geometry.NewVector2(geometry.NewFloatingPoint(x), geometry.NewFloatingPoint(y))
}

func NewColor(r, g, b float32) Color {
	return geometry.NewVector3(geometry.NewFloatingPoint(r), geometry.NewFloatingPoint(g), geometry.NewFloatingPoint(b))
}

// Step advances the particle by dt seconds using semi-implicit Euler integration.
// fade is the fraction of tint left after one second.
func (p Particle) Step(gravity Point, fade float64, dt float64) Particle {
	elapsed := geometry.NewFloatingPoint(dt)
	velocity := p.Velocity.Add(gravity.Scale(elapsed))

	return Particle{
		Position: p.Position.Add(velocity.Scale(elapsed)),
		Velocity: velocity,
		Tint:     p.Tint.Scale(geometry.NewFloatingPoint(float32(math.Pow(fade, dt)))),
	}
}

// Bounce reflects a particle that left the bounds back inside, reversing the
// velocity component that carried it out and scaling it by restitution.
func (p Particle) Bounce(bounds Bounds, restitution float64) Particle {
	r := geometry.NewFloatingPoint(restitution)
	x, vx := reflect(p.Position.X(), p.Velocity.X(), geometry.NewFloatingPoint(bounds.Width), r)
	y, vy := reflect(p.Position.Y(), p.Velocity.Y(), geometry.NewFloatingPoint(bounds.Height), r)

	return Particle{
		Position: geometry.NewVector2(x, y),
		Velocity: geometry.NewVector2(vx, vy),
		Tint:     p.Tint,
	}
}

// Faded reports whether every tint channel has dropped below cutoff.
func (p Particle) Faded(cutoff float32) bool {
	c := geometry.NewFloatingPoint(cutoff)
	return p.Tint.X().Less(c) && p.Tint.Y().Less(c) && p.Tint.Z().Less(c)
}

func reflect(pos, vel, limit, restitution Scalar) (Scalar, Scalar) {
	zero := geometry.NewFloatingPoint(0.0)

	switch {
	case pos.Less(zero):
		pos = clamp(pos.Neg(), zero, limit)
		if vel.Less(zero) {
			vel = vel.Neg().Mul(restitution)
		}
	case pos.Greater(limit):
		pos = clamp(limit.Add(limit).Sub(pos), zero, limit)
		if vel.Greater(zero) {
			vel = vel.Neg().Mul(restitution)
		}
	}

	return pos, vel
}

func clamp(value, min, max Scalar) Scalar {
	if value.Greater(max) {
		return max
	}

	if value.Less(min) {
		return min
	}

	return value
}
