package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrInvalidState indicates a NaN or Inf position or velocity, usually
	// from two particles meeting.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	ErrCanceled = errors.New("sim: run canceled")
)

// SimulationError wraps an error with the tick it happened on.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
