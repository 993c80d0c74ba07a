package config

import "sort"

// Presets are ready-made bench runs whose readings land close to the
// documented modulus of their material.
var Presets = map[string]*Config{
	"steel-point": {
		Material: "steel", Bending: "non-uniform",
		Dimensions: DimensionsConfig{Length: 50, Breadth: 2, Width: 0.3},
		Initial:    1.2,
		LoadStep:   50,
		Readings: []ReadingConfig{
			{Position: 1.214},
			{Position: 1.228},
			{Position: 1.243},
		},
	},
	"brass-uniform": {
		Material: "brass", Bending: "uniform",
		Dimensions: DimensionsConfig{Length: 60, Breadth: 2.5, Width: 0.4},
		Initial:    0.8,
		Readings: []ReadingConfig{
			{Load: 100, Position: 0.821},
			{Load: 200, Position: 0.841},
			{Load: 300, Position: 0.862},
		},
	},
	"pine-point": {
		Material: "pine_wood", Bending: "non-uniform",
		Dimensions: DimensionsConfig{Length: 40, Breadth: 3, Width: 0.5},
		Initial:    1.5,
		LoadStep:   100,
		Readings: []ReadingConfig{
			{Position: 1.546},
			{Position: 1.593},
			{Position: 1.639},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
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
