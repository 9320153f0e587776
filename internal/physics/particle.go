package physics

import (
	"fmt"
	"math"
)

const (
	minRadius   = 16.0
	maxRadius   = 64.0
	radiusScale = 0.01
)

// Particle is a point mass integrated with semi-implicit Euler.
//
// pending accumulates force/mass contributions for the current tick. It is
// consumed by Update and reset to zero afterwards; it is not a standing
// acceleration.
type Particle struct {
	mass     float64
	position Vector2D
	velocity Vector2D
	pending  Vector2D
	trail    *Trail
	radius   float64
}

// NewParticle creates a particle. pending pre-loads the accumulator and is
// normally Zero().
func NewParticle(mass float64, position, velocity, pending Vector2D) *Particle {
	return &Particle{
		mass:     mass,
		position: position,
		velocity: velocity,
		pending:  pending,
		trail:    NewTrail(TrailCapacity),
		radius:   math.Max(minRadius, math.Min(maxRadius, mass*radiusScale)),
	}
}

// Update advances the particle by dt. The order is fixed: velocity first,
// then the trail and position using the new velocity, then the accumulator
// is cleared.
func (p *Particle) Update(dt float64) {
	p.velocity.AddInPlace(p.pending.Scale(dt))

	p.trail.Push(p.position)
	p.position.AddInPlace(p.velocity.Scale(dt))

	p.pending = Zero()
}

// ApplyForce adds f/mass to the accumulator. Massless particles ignore
// forces.
func (p *Particle) ApplyForce(f Vector2D) {
	if p.mass != 0 {
		p.pending.AddInPlace(f.Div(p.mass))
	}
}

func (p *Particle) DistanceTo(o *Particle) float64 {
	return o.position.Sub(p.position).Magnitude()
}

// AxisTo returns the unit vector from p toward o.
func (p *Particle) AxisTo(o *Particle) Vector2D {
	return p.position.Axis(o.position)
}

func (p *Particle) Mass() float64           { return p.mass }
func (p *Particle) Position() Vector2D      { return p.position }
func (p *Particle) Velocity() Vector2D      { return p.velocity }
func (p *Particle) Pending() Vector2D       { return p.pending }
func (p *Particle) Radius() float64         { return p.radius }
func (p *Particle) TrailLen() int           { return p.trail.Len() }
func (p *Particle) Trail() []Vector2D       { return p.trail.Points() }
func (p *Particle) TrailNewest() []Vector2D { return p.trail.Newest() }

func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.mass * p.velocity.Dot(p.velocity)
}

func (p *Particle) Momentum() Vector2D {
	return p.velocity.Scale(p.mass)
}

// Clone returns an independent copy including the trail.
func (p *Particle) Clone() *Particle {
	c := *p
	c.trail = p.trail.clone()
	return &c
}

func (p *Particle) String() string {
	return fmt.Sprintf("Particle(Position(x=%g, y=%g), Velocity(x=%g, y=%g), Acceleration(x=%g, y=%g))",
		p.position.X, p.position.Y, p.velocity.X, p.velocity.Y, p.pending.X, p.pending.Y)
}
