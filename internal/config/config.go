package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/scene"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultFPS      = 144
	DefaultExtent   = 5.0
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultTheme    = "default"
)

var (
	ErrNoBodies = errors.New("config: scene has no bodies")

	// ErrFixedGravity rejects a gravity override for scenarios whose
	// initial conditions are solved for G.
	ErrFixedGravity = errors.New("config: scenario requires the default gravity")
)

// fixedGravity lists scenarios whose masses are derived from G.
var fixedGravity = map[string]bool{"figure8": true}

type Config struct {
	Scenario string       `yaml:"scenario"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Seed     int64        `yaml:"seed"`
	Gravity  float64      `yaml:"gravity"`
	FPS      int          `yaml:"fps"`
	Bodies   []BodyConfig `yaml:"bodies,omitempty"`
	View     ViewConfig   `yaml:"view"`
	Theme    string       `yaml:"theme"`
}

// BodyConfig describes one particle. A non-empty Bodies list replaces the
// named scenario.
type BodyConfig struct {
	Mass float64 `yaml:"mass"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

type ViewConfig struct {
	// Extent is the half-width of the visible world square.
	Extent      float64 `yaml:"extent"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ShowVectors bool    `yaml:"show_vectors"`
	ShowTrails  bool    `yaml:"show_trails"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: scene.DefaultScenario,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Gravity:  scene.G,
		FPS:      DefaultFPS,
		View: ViewConfig{
			Extent:      DefaultExtent,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			ShowVectors: true,
			ShowTrails:  true,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.View.Extent <= 0 {
		return fmt.Errorf("view extent must be positive, got %f", c.View.Extent)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative, got %g", c.Gravity)
	}
	if len(c.Bodies) == 0 {
		if c.Scenario == "" {
			return ErrNoBodies
		}
		if fixedGravity[c.Scenario] && c.Gravity != scene.G {
			return fmt.Errorf("%w: %s needs %g, got %g", ErrFixedGravity, c.Scenario, scene.G, c.Gravity)
		}
	}
	return nil
}

// BuildScene creates the configured scene with the configured gravity. A
// gravity of zero gives free motion.
func (c *Config) BuildScene() (*scene.Scene, error) {
	var ps []*physics.Particle
	if len(c.Bodies) > 0 {
		ps = make([]*physics.Particle, len(c.Bodies))
		for i, b := range c.Bodies {
			ps[i] = physics.NewParticle(b.Mass, physics.Vector2D{X: b.X, Y: b.Y}, physics.Vector2D{X: b.VX, Y: b.VY}, physics.Zero())
		}
	} else {
		if c.Scenario == "" {
			return nil, ErrNoBodies
		}
		s, err := scene.Scenario(c.Scenario, c.Seed)
		if err != nil {
			return nil, err
		}
		ps = s.Particles()
	}

	return scene.NewWithGravity(c.Gravity, ps...), nil
}
