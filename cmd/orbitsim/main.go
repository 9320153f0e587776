package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/scene"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFormat  string

	scenario  string
	dt        float64
	duration  float64
	seed      int64
	gravity   float64
	fps       int
	extent    float64
	theme     string
	format    string
	sampleN   int
	body      int
	steps     int
	noVectors bool
	noTrails  bool
	menu      bool
)

var (
	// replaced once flags are parsed
	logger = logging.NewFromEnv()
	level  = slog.LevelInfo
)

// main registers the orbitsim commands and executes the root command. With
// no subcommand it opens the terminal scenario menu.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orbitsim",
		Short:         "real-time 2D gravitational n-body simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level = logging.LevelFromEnv(logging.EnvLevel)
			if logLevel != "" {
				level = logging.ParseLevel(logLevel)
			}
			logger = logging.New(os.Stderr, level, logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runMenu(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logging.EnvLevel)
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.StringVar(&scenario, "scenario", scene.DefaultScenario, "scenario name")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	pf.Int64Var(&seed, "seed", 1, "random seed for generated scenarios")
	pf.Float64Var(&gravity, "gravity", scene.G, "gravitational constant")
	pf.Float64Var(&extent, "extent", config.DefaultExtent, "half-width of the visible world square")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and print metrics",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&format, "format", "table", "output format (table, json, csv, svg)")
	runCmd.Flags().IntVar(&sampleN, "record-every", 1, "record one frame every n ticks")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", 60, "frame rate")
	liveCmd.Flags().IntVar(&steps, "steps-per-frame", 1, "ticks per frame")
	liveCmd.Flags().BoolVar(&noVectors, "no-vectors", false, "hide velocity vectors")
	liveCmd.Flags().BoolVar(&noTrails, "no-trails", false, "hide trails")
	liveCmd.Flags().BoolVar(&menu, "interactive", false, "pick the scenario from a menu")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	windowCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	windowCmd.Flags().BoolVar(&noVectors, "no-vectors", false, "hide velocity vectors")
	windowCmd.Flags().BoolVar(&noTrails, "no-trails", false, "hide trails")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "orbital periods, statistics and chaos indicators",
		Args:  cobra.NoArgs,
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	analyzeCmd.Flags().IntVar(&body, "body", 1, "body to plot")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark tick throughput",
		Args:  cobra.NoArgs,
		RunE:  benchScene,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.ScenarioNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(runCmd, liveCmd, windowCmd, analyzeCmd, benchCmd, scenariosCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the preset or config file, then applies any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, logging.WrapError(err, "failed to load config %s", configFile)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("scenario") {
		cfg.Scenario = scenario
		cfg.Bodies = nil
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("extent") {
		cfg.View.Extent = extent
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("no-vectors") {
		cfg.View.ShowVectors = !noVectors
	}
	if flags.Changed("no-trails") {
		cfg.View.ShowTrails = !noTrails
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved", "scenario", cfg.Scenario, "bodies", len(cfg.Bodies), "dt", cfg.Dt, "duration", cfg.Duration)
	return cfg, nil
}

func scenarioName(cfg *config.Config) string {
	if len(cfg.Bodies) > 0 {
		return "custom"
	}
	return cfg.Scenario
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-12s scenario=%s dt=%g duration=%g\n", name, scenarioName(p), p.Dt, p.Duration)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "orbitsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	logger.Info("config written", "path", path)
	fmt.Printf("wrote %s\n", path)
	return nil
}
