// Package scene holds the particle set of a simulation and computes the
// pairwise gravitational forces that drive it.
//
// A tick is two phases: [Scene.AccumulateForces] visits every ordered pair
// of distinct particles, then every particle integrates. No particle moves
// until all forces for the tick are applied.
//
//	s := scene.Solar()
//	for i := 0; i < 1000; i++ {
//	    s.Step(0.01)
//	}
package scene
