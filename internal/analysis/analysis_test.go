package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
)

func sine(n int, dt, period float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) * dt / period)
	}
	return data
}

func circularOrbit() *scene.Scene {
	sun := physics.NewParticle(1/scene.G, physics.Zero(), physics.Zero(), physics.Zero())
	planet := physics.NewParticle(1, physics.Vector2D{X: 1, Y: 0}, physics.Vector2D{X: 0, Y: 1}, physics.Zero())
	return scene.New(sun, planet)
}

func TestPowerSpectrumPeak(t *testing.T) {
	ps := PowerSpectrum(sine(64, 1.0/64, 0.25))

	if len(ps) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(ps))
	}
	peak := 0
	for k := range ps {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak != 4 {
		t.Errorf("expected peak at bin 4, got %d", peak)
	}
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		dt     float64
		period float64
	}{
		{"period 2", 2000, 0.01, 2},
		{"period 5", 1000, 0.05, 5},
		{"odd length", 999, 0.01, 3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DominantPeriod(sine(tt.n, tt.dt, tt.period), tt.dt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// resolution is limited to n*dt/k
			if math.Abs(got-tt.period)/tt.period > 0.05 {
				t.Errorf("expected period ~%.3f, got %.3f", tt.period, got)
			}
		})
	}
}

func TestDominantPeriodErrors(t *testing.T) {
	if _, err := DominantPeriod([]float64{1, 2}, 0.1); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}

	flat := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	if _, err := DominantPeriod(flat, 0.1); !errors.Is(err, ErrNoPeak) {
		t.Errorf("expected ErrNoPeak, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mean != 2.5 || s.Min != 1 || s.Max != 4 {
		t.Errorf("unexpected summary %+v", s)
	}
	if math.Abs(s.StdDev-math.Sqrt(5.0/3.0)) > 1e-12 {
		t.Errorf("expected stddev %v, got %v", math.Sqrt(5.0/3.0), s.StdDev)
	}

	one, err := Summarize([]float64{7})
	if err != nil || one.StdDev != 0 || one.Mean != 7 {
		t.Errorf("unexpected single-sample summary %+v, %v", one, err)
	}

	if _, err := Summarize(nil); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestLyapunovLeavesSceneUntouched(t *testing.T) {
	s := circularOrbit()
	before := s.Particles()[1].Position()

	lambda := LyapunovExponent(s, 0.01, 5, 1e-8)

	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		t.Errorf("expected finite exponent, got %v", lambda)
	}
	if s.Ticks() != 0 || !s.Particles()[1].Position().Equal(before) {
		t.Error("input scene was modified")
	}
}

func TestLyapunovDegenerateInputs(t *testing.T) {
	if got := LyapunovExponent(scene.New(), 0.01, 1, 1e-8); got != 0 {
		t.Errorf("expected 0 for empty scene, got %v", got)
	}
	if got := LyapunovExponent(circularOrbit(), 0.01, 1, 0); got != 0 {
		t.Errorf("expected 0 for zero perturbation, got %v", got)
	}
}

func TestOrbitPortraitAndCrossings(t *testing.T) {
	result, err := sim.New(circularOrbit()).Run(context.Background(), sim.Config{Dt: 0.001, Duration: 7, RecordEvery: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	portrait, err := OrbitPortrait(result, 1)
	if err != nil {
		t.Fatalf("portrait failed: %v", err)
	}
	if len(portrait.Points) != len(result.Frames) {
		t.Errorf("expected %d points, got %d", len(result.Frames), len(portrait.Points))
	}
	for _, p := range portrait.Points {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 0.05 {
			t.Fatalf("expected points on the unit circle, got radius %v", r)
		}
	}

	section, err := Crossings(result, 1)
	if err != nil {
		t.Fatalf("crossings failed: %v", err)
	}
	if len(section.Points) != 1 {
		t.Fatalf("expected one full revolution, got %d crossings", len(section.Points))
	}
	if math.Abs(section.Points[0].X-1) > 0.05 || math.Abs(section.Points[0].Y) > 0.05 {
		t.Errorf("expected crossing near (1, 0), got %v", section.Points[0])
	}

	if _, err := OrbitPortrait(result, 5); err == nil {
		t.Error("expected error for missing body")
	}
}

func TestPhasePortraitToASCII(t *testing.T) {
	portrait := &PhasePortrait2D{Points: []struct{ X, Y float64 }{{-1, -1}, {0, 0}, {1, 1}}}
	out := PhasePortraitToASCII(portrait, 20, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "•") {
		t.Error("expected plotted points")
	}

	if PhasePortraitToASCII(nil, 20, 10) != "" {
		t.Error("expected empty output for nil portrait")
	}
	if PoincareSectionToASCII(&PoincareSection{}, 20, 10) != "No crossings detected" {
		t.Error("expected placeholder for empty section")
	}
}
