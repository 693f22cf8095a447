package game

import (
	"math"
	"math/rand"
)

// Particle is a single cosmetic spark. Particles live entirely on the
// rendering side; the session never sees them.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64
	Lifetime float64
	Size     float64
}

// IsAlive returns true while the particle should still be drawn.
func (p *Particle) IsAlive() bool {
	return p.Age < p.Lifetime
}

// ParticleSystem holds all live sparks and emits radial bursts at hit
// positions.
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: 512,
		rng:          rng,
	}
}

// Burst emits a small radial explosion at (x, y).
func (ps *ParticleSystem) Burst(x, y float64) {
	count := 6 + ps.rng.Intn(7)
	for i := 0; i < count && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 80 + ps.rng.Float64()*140
		ps.particles = append(ps.particles, Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Lifetime: 0.08 + ps.rng.Float64()*0.14,
			Size:     1 + ps.rng.Float64()*2,
		})
	}
}

// Update ages and moves particles, dropping the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.Age += dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += 180 * dt // slight gravity pull
		if !p.IsAlive() {
			ps.particles = append(ps.particles[:i], ps.particles[i+1:]...)
		}
	}
}

// Particles returns the live particles for drawing.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Clear drops everything, used when a run ends.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
