package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/racketlab/internal/sim"
)

const (
	DefaultSamples = 7000
	DefaultSeed    = 7
	DefaultTopN    = 15
	DefaultWorkers = 1
)

type Weights struct {
	Speed float64 `yaml:"speed"`
	Shock float64 `yaml:"shock"`
}

type Config struct {
	Samples   int           `yaml:"samples"`
	Seed      int64         `yaml:"seed"`
	TopN      int           `yaml:"top_n"`
	Workers   int           `yaml:"workers"`
	Weights   Weights       `yaml:"weights"`
	Bounds    sim.Bounds    `yaml:"bounds"`
	Constants sim.Constants `yaml:"constants"`
}

func DefaultConfig() *Config {
	return &Config{
		Samples: DefaultSamples,
		Seed:    DefaultSeed,
		TopN:    DefaultTopN,
		Workers: DefaultWorkers,
		Weights: Weights{
			Speed: sim.DefaultWSpeed,
			Shock: sim.DefaultWShock,
		},
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	return c.Constants.Validate()
}
