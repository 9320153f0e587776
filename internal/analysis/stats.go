package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrTooShort
	}
	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return Summary{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(data),
		Max:    floats.Max(data),
	}, nil
}
