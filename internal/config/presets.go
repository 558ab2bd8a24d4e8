package config

import "sort"

// Presets are named starting points layered under the config file and flags.
var Presets = map[string]*Config{
	// The reference setup: uniform kinetics, slow drift.
	"baseline": {
		Model: ModelConfig{Particles: 100, Width: 1, Length: 10, K0: 0.1, Alpha: 0, Peak: 3, Sigma: 1, Velocity: 0.05},
		Steps: 100,
	},
	// Slow base rate with a strong hotspot, so assembly nucleates around x_p.
	"hotspot": {
		Model: ModelConfig{Particles: 300, Width: 1, Length: 10, K0: 0.0005, Alpha: 25, Peak: 3, Sigma: 0.75, Velocity: 0.05},
		Steps: 60,
	},
	"inert": {
		Model: ModelConfig{Particles: 100, Width: 1, Length: 10, K0: 0, Alpha: 0, Peak: 3, Sigma: 1, Velocity: 0.1},
		Steps: 200,
	},
	"crowded": {
		Model:   ModelConfig{Particles: 5000, Width: 2, Length: 20, K0: 0.002, Alpha: 4, Peak: 10, Sigma: 2, Velocity: 0.2},
		Steps:   40,
		Streams: "per-particle",
	},
	"static": {
		Model: ModelConfig{Particles: 200, Width: 1, Length: 10, K0: 0.01, Alpha: 3, Peak: 5, Sigma: 1.5, Velocity: 0},
		Steps: 50,
	},
}

// GetPreset returns a copy of the named preset with run defaults filled in,
// or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Model = p.Model
	if p.Steps > 0 {
		cfg.Steps = p.Steps
	}
	if p.Streams != "" {
		cfg.Streams = p.Streams
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
