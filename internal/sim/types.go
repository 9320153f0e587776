package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
)

// BodyState is a snapshot of one particle after a tick.
type BodyState struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// Frame holds every body's state at one instant, in scene order.
type Frame []BodyState

// Capture snapshots the scene.
func Capture(s *scene.Scene) Frame {
	ps := s.Particles()
	f := make(Frame, len(ps))
	for i, p := range ps {
		f[i] = BodyState{Position: p.Position(), Velocity: p.Velocity()}
	}
	return f
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s *scene.Scene, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every tick.
type Observer interface {
	OnStep(s *scene.Scene, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
	// RecordEvery keeps one frame in RecordEvery ticks. Zero or one records all.
	RecordEvery int
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
		RecordEvery:   1,
	}
}

type Result struct {
	Times       []float64
	Frames      []Frame
	Energies    []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// Series extracts one coordinate of one body across all frames.
// component is one of "x", "y", "vx", "vy".
func (r *Result) Series(body int, component string) ([]float64, error) {
	out := make([]float64, 0, len(r.Frames))
	for _, f := range r.Frames {
		if body < 0 || body >= len(f) {
			return nil, fmt.Errorf("body %d out of range [0, %d)", body, len(f))
		}
		b := f[body]
		switch component {
		case "x":
			out = append(out, b.Position.X)
		case "y":
			out = append(out, b.Position.Y)
		case "vx":
			out = append(out, b.Velocity.X)
		case "vy":
			out = append(out, b.Velocity.Y)
		default:
			return nil, fmt.Errorf("unknown component %q", component)
		}
	}
	return out, nil
}
