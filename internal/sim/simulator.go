package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/scene"
)

// Simulator drives a scene tick by tick and feeds metrics and observers.
// It is not safe for concurrent use.
type Simulator struct {
	scene     *scene.Scene
	initial   *scene.Scene
	metrics   []Metric
	observers []Observer
	log       *logging.Logger
}

func New(s *scene.Scene) *Simulator {
	return &Simulator{
		scene:     s,
		initial:   s.Clone(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       logging.Discard(),
	}
}

func (s *Simulator) AddMetric(m Metric)          { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)      { s.observers = append(s.observers, o) }
func (s *Simulator) SetLogger(l *logging.Logger) { s.log = l }
func (s *Simulator) Scene() *scene.Scene         { return s.scene }

// Step advances the scene by dt and notifies metrics and observers.
func (s *Simulator) Step(dt float64) {
	s.scene.Step(dt)
	s.notify()
}

func (s *Simulator) notify() {
	t := s.scene.Time()
	for _, m := range s.metrics {
		m.Observe(s.scene, t)
	}
	for _, o := range s.observers {
		o.OnStep(s.scene, t)
	}
}

// Reset restores the scene the simulator was created with and clears the
// metrics.
func (s *Simulator) Reset() {
	s.scene = s.initial.Clone()
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Run steps the scene for cfg.Duration. A state that turns NaN or Inf ends
// the run early with a SimulationError in Result.Errors.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration/cfg.Dt + 1e-9)
	every := cfg.RecordEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		Times:    make([]float64, 0, steps/every+1),
		Frames:   make([]Frame, 0, steps/every+1),
		Energies: make([]float64, 0, steps/every+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.scene, s.scene.Time())
	}

	initialEnergy := s.scene.Energy()
	s.record(result)
	halted := false

	s.log.Debug("run started", "bodies", s.scene.Len(), "steps", steps, "dt", cfg.Dt)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		default:
		}

		s.scene.Step(cfg.Dt)
		result.StepsTaken++

		// metrics and observers never see a non-finite state
		if cfg.ValidateState && !s.scene.Valid() {
			err := &SimulationError{Step: s.scene.Ticks(), Time: s.scene.Time(), Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			s.log.Warn("run stopped", "error", err)
			halted = true
			break
		}
		s.notify()

		if (i+1)%every == 0 {
			s.record(result)
		}
	}

	// a halted run measures drift up to the last recorded frame
	finalEnergy := s.scene.Energy()
	if halted {
		finalEnergy = result.Energies[len(result.Energies)-1]
	}
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.log.Debug("run finished", "steps", result.StepsTaken, "energy_drift", result.EnergyDrift)

	return result, nil
}

func (s *Simulator) record(r *Result) {
	r.Times = append(r.Times, s.scene.Time())
	r.Frames = append(r.Frames, Capture(s.scene))
	r.Energies = append(r.Energies, s.scene.Energy())
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}

// RunWithCallback steps until cfg.Duration elapses or callback returns
// false. The callback sees the scene before each tick.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(*scene.Scene, float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for start := s.scene.Time(); s.scene.Time()-start < cfg.Duration; {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		default:
		}

		if !callback(s.scene, s.scene.Time()) {
			return nil
		}

		s.scene.Step(cfg.Dt)

		if cfg.ValidateState && !s.scene.Valid() {
			return &SimulationError{Step: s.scene.Ticks(), Time: s.scene.Time(), Wrapped: ErrInvalidState}
		}
		s.notify()
	}

	return nil
}
