package metrics

import (
	"github.com/san-kum/orbitsim/internal/scene"
)

// Stability is the fraction of observations in which every body stayed
// finite and within radius of the origin.
type Stability struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewStability(radius float64) *Stability {
	return &Stability{
		name:   "stability",
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(sc *scene.Scene, t float64) {
	s.samples++
	if !sc.Valid() || sc.MaxDistance() > s.radius {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
