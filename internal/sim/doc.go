// Package sim runs a [scene.Scene] for a fixed duration, recording frames
// and feeding [Metric] and [Observer] implementations after every tick.
//
//	s := sim.New(scene.Solar())
//	s.AddMetric(metrics.NewEnergyDrift())
//	result, err := s.Run(ctx, sim.DefaultConfig())
//
// A Simulator is NOT thread-safe; one driver calls Step or Run at a time.
package sim
