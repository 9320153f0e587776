package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

var (
	_ sim.Metric = (*Energy)(nil)
	_ sim.Metric = (*EnergyDrift)(nil)
	_ sim.Metric = (*Momentum)(nil)
	_ sim.Metric = (*Stability)(nil)
)

func pair() *scene.Scene {
	a := physics.NewParticle(2, physics.Vector2D{X: -1, Y: 0}, physics.Vector2D{X: 0, Y: -1}, physics.Zero())
	b := physics.NewParticle(2, physics.Vector2D{X: 1, Y: 0}, physics.Vector2D{X: 0, Y: 1}, physics.Zero())
	return scene.NewWithGravity(1, a, b)
}

func TestEnergyAverage(t *testing.T) {
	s := pair()
	m := NewEnergy()

	m.Observe(s, 0)
	if math.Abs(m.Value()-s.Energy()) > 1e-12 {
		t.Errorf("expected energy %f, got %f", s.Energy(), m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	s := scene.Solar()
	m := NewEnergyDrift()

	m.Observe(s, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero drift on first sample, got %v", m.Value())
	}

	for i := 0; i < 200; i++ {
		s.Step(0.01)
		m.Observe(s, s.Time())
	}
	if m.Value() <= 0 || m.Value() > 0.1 {
		t.Errorf("expected small positive drift, got %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMomentumStaysFlat(t *testing.T) {
	s := scene.Solar()
	m := NewMomentum()

	m.Observe(s, 0)
	for i := 0; i < 500; i++ {
		s.Step(0.01)
		m.Observe(s, s.Time())
	}
	if m.Value() > 1e-9 {
		t.Errorf("expected momentum conserved, drift %v", m.Value())
	}
}

func TestStability(t *testing.T) {
	m := NewStability(1.5)
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %v", m.Value())
	}

	m.Observe(pair(), 0)
	m.Observe(scene.New(physics.NewParticle(1, physics.Vector2D{X: 3, Y: 0}, physics.Zero(), physics.Zero())), 0)

	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %v", m.Value())
	}
}
