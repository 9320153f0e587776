package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooShort = errors.New("analysis: series too short")
	ErrNoPeak   = errors.New("analysis: no periodic component")
)

// PowerSpectrum returns the magnitude of the first len(data)/2 DFT bins.
// Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod estimates the period of the strongest oscillation in a
// series sampled every dt. The mean is removed first so the DC bin never
// wins.
func DominantPeriod(data []float64, dt float64) (float64, error) {
	if len(data) < 4 {
		return 0, ErrTooShort
	}

	mean := stat.Mean(data, nil)
	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	ps := PowerSpectrum(centred)
	peak, best := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			peak, best = k, ps[k]
		}
	}
	if peak == 0 {
		return 0, ErrNoPeak
	}

	return float64(len(data)) * dt / float64(peak), nil
}
