package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
)

// Momentum records the largest change in total linear momentum since the
// first observation. Because every pair's pull is applied in both
// directions, this stays near rounding error.
type Momentum struct {
	name     string
	initial  physics.Vector2D
	maxDelta float64
	samples  int
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum_drift"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(s *scene.Scene, t float64) {
	p := s.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDelta = math.Max(m.maxDelta, p.Sub(m.initial).Magnitude())
}

func (m *Momentum) Value() float64 { return m.maxDelta }

func (m *Momentum) Reset() {
	m.initial = physics.Zero()
	m.maxDelta = 0
	m.samples = 0
}
