package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticleStep(t *testing.T) {
	p := Particle{
		Position: NewPoint(10, 20),
		Velocity: NewPoint(4, 0),
		Tint:     NewColor(1, 0.5, 0.25),
	}

	next := p.Step(NewPoint(0, 10), 0.25, 0.5)

	assert.True(t, next.Velocity.Equal(NewPoint(4, 5)), "velocity %s", next.Velocity)
	assert.True(t, next.Position.Equal(NewPoint(12, 22.5)), "position %s", next.Position)
	assert.True(t, next.Tint.Equal(NewColor(0.5, 0.25, 0.125)), "tint %s", next.Tint)

	// The receiver is left untouched.
	assert.True(t, p.Position.Equal(NewPoint(10, 20)))
}

func TestParticleBounce(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 100}
	tests := []struct {
		name         string
		in           Particle
		wantPosition Point
		wantVelocity Point
	}{
		{
			name:         "inside",
			in:           Particle{Position: NewPoint(50, 50), Velocity: NewPoint(-20, 8)},
			wantPosition: NewPoint(50, 50),
			wantVelocity: NewPoint(-20, 8),
		},
		{
			name:         "left wall",
			in:           Particle{Position: NewPoint(-10, 50), Velocity: NewPoint(-20, 0)},
			wantPosition: NewPoint(10, 50),
			wantVelocity: NewPoint(10, 0),
		},
		{
			name:         "right wall",
			in:           Particle{Position: NewPoint(120, 50), Velocity: NewPoint(20, 6)},
			wantPosition: NewPoint(80, 50),
			wantVelocity: NewPoint(-10, 6),
		},
		{
			name:         "floor",
			in:           Particle{Position: NewPoint(50, 105), Velocity: NewPoint(0, 40)},
			wantPosition: NewPoint(50, 95),
			wantVelocity: NewPoint(0, -20),
		},
		{
			name:         "far outside is clamped",
			in:           Particle{Position: NewPoint(350, -500), Velocity: NewPoint(8, -4)},
			wantPosition: NewPoint(0, 100),
			wantVelocity: NewPoint(-4, 2),
		},
		{
			name:         "already heading back",
			in:           Particle{Position: NewPoint(-4, 50), Velocity: NewPoint(6, 0)},
			wantPosition: NewPoint(4, 50),
			wantVelocity: NewPoint(6, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Bounce(bounds, 0.5)
			assert.True(t, got.Position.Equal(tt.wantPosition), "position %s", got.Position)
			assert.True(t, got.Velocity.Equal(tt.wantVelocity), "velocity %s", got.Velocity)
		})
	}
}

func TestParticleBounceKeepsNaN(t *testing.T) {
	p := Particle{Position: NewPoint(math.NaN(), 10), Velocity: NewPoint(1, 1)}
	got := p.Bounce(Bounds{Width: 100, Height: 100}, 0.5)
	assert.True(t, got.Position.X().IsNaN())
	assert.Equal(t, 10.0, got.Position.Y().Value())
}

func TestParticleFaded(t *testing.T) {
	assert.True(t, Particle{Tint: NewColor(0.01, 0.02, 0.03)}.Faded(0.05))
	assert.False(t, Particle{Tint: NewColor(0.01, 0.2, 0.03)}.Faded(0.05))
	assert.False(t, Particle{Tint: NewColor(float32(math.NaN()), 0, 0)}.Faded(0.05))
}
