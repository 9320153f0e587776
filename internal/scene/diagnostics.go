package scene

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
)

// Energy returns kinetic plus gravitational potential energy.
func (s *Scene) Energy() float64 {
	ke, pe := 0.0, 0.0
	for i, pi := range s.particles {
		ke += pi.KineticEnergy()
		for _, pj := range s.particles[i+1:] {
			pe -= s.g * pi.Mass() * pj.Mass() / pi.DistanceTo(pj)
		}
	}
	return ke + pe
}

func (s *Scene) Momentum() physics.Vector2D {
	var p physics.Vector2D
	for _, pt := range s.particles {
		p.AddInPlace(pt.Momentum())
	}
	return p
}

// AngularMomentum is the z component of sum(m * r x v) about the origin.
func (s *Scene) AngularMomentum() float64 {
	l := 0.0
	for _, p := range s.particles {
		r, v := p.Position(), p.Velocity()
		l += p.Mass() * (r.X*v.Y - r.Y*v.X)
	}
	return l
}

// CenterOfMass returns the mass-weighted mean position. A scene without
// mass returns the zero vector.
func (s *Scene) CenterOfMass() physics.Vector2D {
	var c physics.Vector2D
	total := 0.0
	for _, p := range s.particles {
		c.AddInPlace(p.Position().Scale(p.Mass()))
		total += p.Mass()
	}
	if total == 0 {
		return physics.Zero()
	}
	return c.Div(total)
}

// Valid reports whether every position and velocity is finite.
func (s *Scene) Valid() bool {
	for _, p := range s.particles {
		if !p.Position().IsFinite() || !p.Velocity().IsFinite() {
			return false
		}
	}
	return true
}

// MaxDistance returns the largest distance of any particle from the origin.
func (s *Scene) MaxDistance() float64 {
	m := 0.0
	for _, p := range s.particles {
		m = math.Max(m, p.Position().Magnitude())
	}
	return m
}
