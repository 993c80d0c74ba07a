package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/banitsriram/young-modulus/internal/experiment"
	"github.com/banitsriram/young-modulus/internal/flexure"
	"github.com/banitsriram/young-modulus/internal/material"
)

const (
	DefaultMaterial = "steel"
	DefaultBending  = "non-uniform"
	DefaultLength   = 50.0
	DefaultBreadth  = 2.0
	DefaultWidth    = 0.3
	DefaultLoadStep = 50.0
)

type Config struct {
	Material   string           `yaml:"material"`
	Bending    string           `yaml:"bending"`
	Dimensions DimensionsConfig `yaml:"dimensions"`
	Initial    float64          `yaml:"initial"`
	LoadStep   float64          `yaml:"load_step"`
	Readings   []ReadingConfig  `yaml:"readings"`
}

// DimensionsConfig holds the beam dimensions in centimetres.
type DimensionsConfig struct {
	Length  float64 `yaml:"length"`
	Breadth float64 `yaml:"breadth"`
	Width   float64 `yaml:"width"`
}

// ReadingConfig is one scale observation. Load may be omitted when the
// file sets load_step; the nth reading then carries n times the step.
type ReadingConfig struct {
	Load     float64 `yaml:"load"`
	Position float64 `yaml:"position"`
}

func DefaultConfig() *Config {
	return &Config{
		Material: DefaultMaterial,
		Bending:  DefaultBending,
		Dimensions: DimensionsConfig{
			Length:  DefaultLength,
			Breadth: DefaultBreadth,
			Width:   DefaultWidth,
		},
		LoadStep: DefaultLoadStep,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Experiment assembles the run this file describes. The material is
// resolved before anything else so an unknown key fails up front, and
// every recorded position is paired with the shared initial reading.
func (c *Config) Experiment() (experiment.Config, error) {
	mat, err := material.Lookup(c.Material)
	if err != nil {
		return experiment.Config{}, err
	}
	bending, err := flexure.ParseBendingType(c.Bending)
	if err != nil {
		return experiment.Config{}, err
	}

	readings := make([]flexure.Reading, 0, len(c.Readings))
	for i, r := range c.Readings {
		load := r.Load
		if load == 0 && c.LoadStep > 0 {
			load = c.LoadStep * float64(i+1)
		}
		readings = append(readings, flexure.Reading{
			Load:    load,
			Initial: c.Initial,
			Final:   r.Position,
		})
	}

	return experiment.Config{
		Material: mat,
		Dims: flexure.Dimensions{
			Length:  c.Dimensions.Length,
			Breadth: c.Dimensions.Breadth,
			Width:   c.Dimensions.Width,
		},
		Bending:  bending,
		Readings: readings,
	}, nil
}
