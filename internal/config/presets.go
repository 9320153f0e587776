package config

import "sort"

var Presets = map[string]*Config{
	"solar": {
		Scenario: "solar", Dt: 0.01, Duration: 60.0, Gravity: 2.95e-4, FPS: 144,
		View:  ViewConfig{Extent: 5, Width: 800, Height: 800, ShowVectors: true, ShowTrails: true},
		Theme: "default",
	},
	"solar-fine": {
		Scenario: "solar", Dt: 0.001, Duration: 60.0, Gravity: 2.95e-4, FPS: 144,
		View:  ViewConfig{Extent: 5, Width: 800, Height: 800, ShowTrails: true},
		Theme: "ocean",
	},
	"ring": {
		Scenario: "ring", Dt: 0.01, Duration: 120.0, Gravity: 2.95e-4, FPS: 144,
		View:  ViewConfig{Extent: 2, Width: 800, Height: 800, ShowVectors: true, ShowTrails: true},
		Theme: "default",
	},
	"cluster": {
		Scenario: "cluster", Dt: 0.005, Duration: 30.0, Seed: 0, Gravity: 2.95e-4, FPS: 144,
		View:  ViewConfig{Extent: 5, Width: 800, Height: 800, ShowTrails: true},
		Theme: "retro",
	},
	"figure8": {
		Scenario: "figure8", Dt: 0.001, Duration: 6.3259, Gravity: 2.95e-4, FPS: 144,
		View:  ViewConfig{Extent: 1.5, Width: 800, Height: 800, ShowTrails: true},
		Theme: "sunset",
	},
	"binary": {
		Dt: 0.001, Duration: 20.0, Gravity: 1, FPS: 144,
		Bodies: []BodyConfig{
			{Mass: 1, X: -0.5, VY: -0.70710678},
			{Mass: 1, X: 0.5, VY: 0.70710678},
		},
		View:  ViewConfig{Extent: 1.5, Width: 800, Height: 800, ShowVectors: true, ShowTrails: true},
		Theme: "default",
	},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Bodies = append([]BodyConfig(nil), cfg.Bodies...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
