package export

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/orbitsim/internal/sim"
)

var ErrEmptyResult = errors.New("export: result has no frames")

// Run describes the parameters a result was produced with.
type Run struct {
	Scenario string  `json:"scenario"`
	Seed     int64   `json:"seed"`
	Gravity  float64 `json:"gravity"`
	Dt       float64 `json:"dt"`
	Duration float64 `json:"duration"`
}

// number encodes NaN and ±Inf as null, which encoding/json rejects
// otherwise.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(fs []float64) []number {
	out := make([]number, len(fs))
	for i, f := range fs {
		out[i] = number(f)
	}
	return out
}

type body struct {
	X  number `json:"x"`
	Y  number `json:"y"`
	VX number `json:"vx"`
	VY number `json:"vy"`
}

type document struct {
	Run
	Steps       int               `json:"steps"`
	Halted      bool              `json:"halted"`
	Errors      []string          `json:"errors,omitempty"`
	EnergyDrift number            `json:"energy_drift"`
	Metrics     map[string]number `json:"metrics"`
	Times       []number          `json:"times"`
	Energies    []number          `json:"energies"`
	Frames      [][]body          `json:"frames"`
}

// WriteJSON encodes run and result as one indented JSON document.
func WriteJSON(w io.Writer, run Run, r *sim.Result) error {
	doc := document{
		Run:         run,
		Steps:       r.StepsTaken,
		Halted:      len(r.Errors) > 0,
		EnergyDrift: number(r.EnergyDrift),
		Metrics:     make(map[string]number, len(r.Metrics)),
		Times:       numbers(r.Times),
		Energies:    numbers(r.Energies),
		Frames:      make([][]body, len(r.Frames)),
	}
	for name, v := range r.Metrics {
		doc.Metrics[name] = number(v)
	}
	for _, err := range r.Errors {
		doc.Errors = append(doc.Errors, err.Error())
	}
	for i, f := range r.Frames {
		bodies := make([]body, len(f))
		for j, b := range f {
			bodies[j] = body{
				X: number(b.Position.X), Y: number(b.Position.Y),
				VX: number(b.Velocity.X), VY: number(b.Velocity.Y),
			}
		}
		doc.Frames[i] = bodies
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
