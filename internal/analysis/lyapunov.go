package analysis

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
)

// LyapunovExponent estimates the largest Lyapunov exponent of a scene using
// two nearby trajectories. The first body of the shadow trajectory starts
// perturbation away along x. A positive value indicates chaos.
//
// Algorithm:
// 1. Step the reference and shadow scenes together
// 2. Whenever their separation exceeds 1, log the growth and restart the
// shadow from the reference at the initial offset
// 3. λ ≈ (1/t) * Σ ln(|δ|/δ0)
//
// The input scene is not modified.
func LyapunovExponent(s *scene.Scene, dt, duration, perturbation float64) float64 {
	if s.Len() == 0 || perturbation <= 0 || dt <= 0 {
		return 0
	}

	ref := s.Clone()
	shadow := perturb(ref, perturbation)
	d0 := perturbation

	t := 0.0
	sumLog := 0.0

	for t < duration {
		ref.Step(dt)
		shadow.Step(dt)
		t += dt

		sep := separation(ref, shadow)
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}

		if sep > 1.0 {
			sumLog += math.Log(sep / d0)
			shadow = perturb(ref, perturbation)
		}
	}

	if t == 0 {
		return 0
	}

	if sep := separation(ref, shadow); sep > 0 && !math.IsInf(sep, 0) {
		sumLog += math.Log(sep / d0)
	}
	return sumLog / t
}

func separation(a, b *scene.Scene) float64 {
	sep := 0.0
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		dp := pb[i].Position().Sub(pa[i].Position())
		dv := pb[i].Velocity().Sub(pa[i].Velocity())
		sep += dp.Dot(dp) + dv.Dot(dv)
	}
	return math.Sqrt(sep)
}

func perturb(s *scene.Scene, eps float64) *scene.Scene {
	src := s.Particles()
	ps := make([]*physics.Particle, len(src))
	for i, p := range src {
		pos := p.Position()
		if i == 0 {
			pos = pos.Add(physics.Vector2D{X: eps})
		}
		ps[i] = physics.NewParticle(p.Mass(), pos, p.Velocity(), physics.Zero())
	}
	return scene.NewWithGravity(s.Gravity(), ps...)
}
