package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/gui"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/scene"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
)

// EnvDebug names the file the terminal UI logs to. Stderr belongs to the
// UI while it runs.
const EnvDebug = "ORBITSIM_DEBUG"

func newSimulator(cfg *config.Config) (*sim.Simulator, error) {
	s, err := cfg.BuildScene()
	if err != nil {
		return nil, logging.WrapError(err, "build scene %q", scenarioName(cfg))
	}
	simulator := sim.New(s)
	simulator.SetLogger(logger.With("scenario", scenarioName(cfg)))
	return simulator, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	simulator, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	simulator.AddMetric(metrics.NewEnergy())
	simulator.AddMetric(metrics.NewEnergyDrift())
	simulator.AddMetric(metrics.NewMomentum())
	simulator.AddMetric(metrics.NewStability(4 * cfg.View.Extent))
	simulator.AddObserver(newProgress(cfg.Duration))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
		RecordEvery:   sampleN,
	}

	start := time.Now()
	result, err := simulator.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	run := export.Run{
		Scenario: scenarioName(cfg),
		Seed:     cfg.Seed,
		Gravity:  simulator.Scene().Gravity(),
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
	}

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, run, result)
	case "csv":
		return export.WriteCSV(os.Stdout, result)
	case "svg":
		vp := render.NewViewport(cfg.View.Extent, cfg.View.Width, cfg.View.Height)
		return export.WriteOrbitsSVG(os.Stdout, result, vp)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Printf("scenario: %s\n", run.Scenario)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range []string{"energy", "energy_drift", "momentum_drift", "stability"} {
		fmt.Fprintf(w, "%s\t%.6g\n", name, result.Metrics[name])
	}
	fmt.Fprintf(w, "final_drift\t%.6g\n", result.EnergyDrift)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Energies) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Energies,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("total energy"),
		))
	}
	return nil
}

// progress logs simulated time at debug level every tenth of a run.
type progress struct {
	every, next float64
}

func newProgress(duration float64) *progress {
	return &progress{every: duration / 10, next: duration / 10}
}

func (p *progress) OnStep(s *scene.Scene, t float64) {
	if t+1e-9 < p.next {
		return
	}
	p.next += p.every
	logger.Debug("progress", "time", t, "ticks", s.Ticks(), "energy", s.Energy())
}

func viewOptions(cfg *config.Config) viz.Options {
	return viz.Options{
		Name:          scenarioName(cfg),
		Dt:            cfg.Dt,
		FPS:           cfg.FPS,
		StepsPerFrame: steps,
		Extent:        cfg.View.Extent,
		ShowVectors:   cfg.View.ShowVectors,
		ShowTrails:    cfg.View.ShowTrails,
		Theme:         cfg.Theme,
		Logger:        logger,
	}
}

// tuiLogger redirects logging to a file when EnvDebug is set, and
// silences it otherwise.
func tuiLogger() (func(), error) {
	path := os.Getenv(EnvDebug)
	if path == "" {
		logger = logging.Discard()
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "orbitsim")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	logger = logging.New(f, level, logFormat)
	return func() { f.Close() }, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if menu {
		return runScenarioMenu(cfg, viewOptions(cfg))
	}

	simulator, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(simulator, viewOptions(cfg)))
}

func runMenu(cfg *config.Config) error {
	closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := viewOptions(cfg)
	opts.FPS = 60
	return runScenarioMenu(cfg, opts)
}

// runScenarioMenu offers the built-in scenarios, plus the config's own
// bodies when it has any, all built with the configured gravity and seed.
func runScenarioMenu(cfg *config.Config, opts viz.Options) error {
	names := scene.ScenarioNames()
	if len(cfg.Bodies) > 0 {
		names = append([]string{"custom"}, names...)
	}
	return viz.RunInteractive(opts, names, menuBuilder(cfg))
}

func menuBuilder(cfg *config.Config) viz.SceneBuilder {
	return func(name string) (*scene.Scene, error) {
		c := *cfg
		if name != "custom" {
			c.Scenario = name
			c.Bodies = nil
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c.BuildScene()
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	simulator, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	gui.Run(simulator, gui.Options{
		Title:       "orbitsim: " + scenarioName(cfg),
		Width:       cfg.View.Width,
		Height:      cfg.View.Height,
		FPS:         cfg.FPS,
		Dt:          cfg.Dt,
		Extent:      cfg.View.Extent,
		ShowVectors: cfg.View.ShowVectors,
		ShowTrails:  cfg.View.ShowTrails,
		Logger:      logger.With("frontend", "window"),
	})
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	simulator, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	initial := simulator.Scene().Clone()

	result, err := simulator.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		fmt.Printf("warning: run stopped early: %v\n", result.Errors[0])
	}

	fmt.Printf("analysis: %s over %gs (%d frames)\n\n", scenarioName(cfg), cfg.Duration, len(result.Frames))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMASS\tPERIOD\tMEAN R\tSTD R\tMIN R\tMAX R")
	for i, p := range initial.Particles() {
		xs, err := result.Series(i, "x")
		if err != nil {
			return err
		}
		ys, _ := result.Series(i, "y")

		period := "-"
		if v, err := analysis.DominantPeriod(xs, cfg.Dt); err == nil {
			period = fmt.Sprintf("%.3f", v)
		}

		radii := make([]float64, len(xs))
		for j := range xs {
			radii[j] = math.Hypot(xs[j], ys[j])
		}
		summary, err := analysis.Summarize(radii)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%g\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			i, p.Mass(), period, summary.Mean, summary.StdDev, summary.Min, summary.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	energy, err := analysis.Summarize(result.Energies)
	if err == nil {
		fmt.Printf("\nenergy: mean %.6g  std %.3g  drift %.3g\n", energy.Mean, energy.StdDev, result.EnergyDrift)
	}

	lyap := analysis.LyapunovExponent(initial, cfg.Dt, cfg.Duration, 1e-8)
	fmt.Printf("lyapunov estimate: %.4f\n\n", lyap)

	portrait, err := analysis.OrbitPortrait(result, body)
	if err != nil {
		return err
	}
	fmt.Printf("orbit of body %d:\n", body)
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))

	section, err := analysis.Crossings(result, body)
	if err != nil {
		return err
	}
	fmt.Printf("\npoincare section (y=0 upward, %d crossings):\n", len(section.Points))
	fmt.Println(analysis.PoincareSectionToASCII(section, 60, 15))
	return nil
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking random clusters (seed %d, dt %g)\n\n", cfg.Seed, cfg.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tSTEPS\tTIME\tSTEPS/SEC\tSTATUS")

	for _, n := range []int{3, 10, 30, 100} {
		simulator := sim.New(scene.Cluster(n, cfg.Seed))
		const ticks = 1000

		taken := 0
		start := time.Now()
		err := simulator.RunWithCallback(cmd.Context(), sim.Config{
			Dt:            cfg.Dt,
			Duration:      ticks * cfg.Dt,
			ValidateState: true,
		}, func(*scene.Scene, float64) bool {
			taken++
			return taken <= ticks
		})
		elapsed := time.Since(start)

		status := "ok"
		var simErr *sim.SimulationError
		switch {
		case errors.As(err, &simErr):
			status = fmt.Sprintf("halted at tick %d", simErr.Step)
		case err != nil:
			return err
		}

		steps := simulator.Scene().Ticks()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%s\n", n, steps, elapsed, float64(steps)/elapsed.Seconds(), status)
	}
	return w.Flush()
}
