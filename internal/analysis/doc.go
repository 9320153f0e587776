// Package analysis characterises recorded runs and scenes:
//
//   - [PowerSpectrum] and [DominantPeriod]: orbital periods via FFT
//   - [Summarize]: mean, deviation and range of a series
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [OrbitPortrait] and [Portrait]: 2D traces of one body
//   - [Crossings]: Poincaré section at y = 0
//
// # Periods
//
//	xs, _ := result.Series(1, "x")
//	period, err := analysis.DominantPeriod(xs, cfg.Dt*float64(cfg.RecordEvery))
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(s, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // scene is chaotic
//	}
package analysis
