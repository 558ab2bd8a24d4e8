package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/sim"
)

const (
	DefaultParticles   = 100
	DefaultWidth       = 1.0
	DefaultLength      = 10.0
	DefaultK0          = 0.1
	DefaultAlpha       = 0.0
	DefaultPeak        = 3.0
	DefaultSigma       = 1.0
	DefaultVelocity    = 0.05
	DefaultSteps       = 100
	DefaultSampleEvery = 10
	DefaultLogLevel    = "info"
)

type Config struct {
	Model       ModelConfig `yaml:"model"`
	Steps       int         `yaml:"steps"`
	Seed        uint64      `yaml:"seed"`
	Streams     string      `yaml:"streams"`
	Workers     int         `yaml:"workers"`
	SampleEvery int         `yaml:"sample_every"`
	LogLevel    string      `yaml:"log_level"`
}

type ModelConfig struct {
	Particles int     `yaml:"particles"`
	Width     float64 `yaml:"width"`
	Length    float64 `yaml:"length"`
	K0        float64 `yaml:"k0"`
	Alpha     float64 `yaml:"alpha"`
	Peak      float64 `yaml:"x_p"`
	Sigma     float64 `yaml:"sigma"`
	Velocity  float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Particles: DefaultParticles,
			Width:     DefaultWidth,
			Length:    DefaultLength,
			K0:        DefaultK0,
			Alpha:     DefaultAlpha,
			Peak:      DefaultPeak,
			Sigma:     DefaultSigma,
			Velocity:  DefaultVelocity,
		},
		Steps:       DefaultSteps,
		Streams:     assembly.StreamShared.String(),
		Workers:     assembly.DefaultWorkers,
		SampleEvery: DefaultSampleEvery,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the model parameters and the run settings together.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("sample_every must be non-negative, got %d", c.SampleEvery)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if _, err := assembly.ParseStreamMode(c.Streams); err != nil {
		return err
	}
	return nil
}

func (c *Config) Params() assembly.Params {
	return assembly.Params{
		N:           c.Model.Particles,
		Width:       c.Model.Width,
		Length:      c.Model.Length,
		K0:          c.Model.K0,
		Alpha:       c.Model.Alpha,
		XP:          c.Model.Peak,
		Sigma:       c.Model.Sigma,
		VelocityMag: c.Model.Velocity,
	}
}

// RunConfig converts the run settings. Call Validate first; an unknown
// stream name falls back to the shared stream.
func (c *Config) RunConfig() sim.Config {
	mode, _ := assembly.ParseStreamMode(c.Streams)
	return sim.Config{
		Steps:           c.Steps,
		Seed:            c.Seed,
		Streams:         mode,
		Workers:         c.Workers,
		SampleEvery:     c.SampleEvery,
		CheckInvariants: true,
	}
}
