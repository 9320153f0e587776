// Package physics provides the vector math and point-mass primitives of the
// gravity simulation.
//
//   - [Vector2D]: 2D vector value with pure and in-place arithmetic
//   - [Particle]: point mass with a per-tick acceleration accumulator
//   - [Trail]: bounded FIFO of past positions, oldest dropped first
//
// # Integration
//
// [Particle.Update] is semi-implicit Euler: velocity is advanced from the
// accumulated acceleration before the position is advanced with the new
// velocity. Swapping the two turns it into explicit Euler and orbits
// spiral outward.
//
//	p := physics.NewParticle(1, physics.Zero(), physics.Zero(), physics.Vector2D{X: 1})
//	p.Update(1) // velocity (1,0), position (1,0)
package physics
