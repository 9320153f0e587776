package scene

import (
	"github.com/san-kum/orbitsim/internal/physics"
)

// G is the gravitational constant in the simulation's unit system.
const G = 2.95e-4

// Scene owns a fixed set of particles and advances them one tick at a time.
// It is not safe for concurrent use.
type Scene struct {
	particles []*physics.Particle
	g         float64
	ticks     int
	time      float64
}

func New(particles ...*physics.Particle) *Scene {
	return NewWithGravity(G, particles...)
}

func NewWithGravity(g float64, particles ...*physics.Particle) *Scene {
	return &Scene{particles: particles, g: g}
}

// Attraction returns the force p1 exerts on p2: G*m1*m2/d² directed from p2
// toward p1. Coincident particles give Inf/NaN.
func (s *Scene) Attraction(p1, p2 *physics.Particle) physics.Vector2D {
	d := p1.DistanceTo(p2)
	force := s.g * p1.Mass() * p2.Mass() / (d * d)
	return p2.AxisTo(p1).Scale(force)
}

// AccumulateForces applies the attraction of every particle to every other
// one. Each ordered pair is visited, so the pull between i and j is computed
// twice, once per direction.
func (s *Scene) AccumulateForces() {
	for _, p1 := range s.particles {
		for _, p2 := range s.particles {
			if p1 == p2 {
				continue
			}
			p2.ApplyForce(s.Attraction(p1, p2))
		}
	}
}

// Acceleration returns the acceleration the other particles currently
// impose on p, without touching any accumulator. Massless particles get
// zero, as ApplyForce ignores them.
func (s *Scene) Acceleration(p *physics.Particle) physics.Vector2D {
	var a physics.Vector2D
	if p.Mass() == 0 {
		return a
	}
	for _, q := range s.particles {
		if q == p {
			continue
		}
		a.AddInPlace(s.Attraction(q, p).Div(p.Mass()))
	}
	return a
}

// Step settles all forces for the tick before any particle integrates.
func (s *Scene) Step(dt float64) {
	s.AccumulateForces()
	for _, p := range s.particles {
		p.Update(dt)
	}
	s.ticks++
	s.time += dt
}

// Particles returns the scene's particles in insertion order. Callers must
// treat them as read-only.
func (s *Scene) Particles() []*physics.Particle { return s.particles }

func (s *Scene) Len() int         { return len(s.particles) }
func (s *Scene) Gravity() float64 { return s.g }
func (s *Scene) Ticks() int       { return s.ticks }
func (s *Scene) Time() float64    { return s.time }

// Clone deep-copies the scene, trails included.
func (s *Scene) Clone() *Scene {
	ps := make([]*physics.Particle, len(s.particles))
	for i, p := range s.particles {
		ps[i] = p.Clone()
	}
	return &Scene{particles: ps, g: s.g, ticks: s.ticks, time: s.time}
}
