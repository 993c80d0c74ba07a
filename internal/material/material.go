// Package material holds the reference catalog of specimen materials and
// their documented elastic properties.
package material

import (
	"errors"
	"fmt"
)

// Material is one catalog entry. Values are reference data for comparing
// measured moduli against, not measured quantities.
type Material struct {
	Key     string  // stable identifier, e.g. "stainless_steel"
	Name    string  // display name
	Modulus float64 // expected Young's modulus, GPa
	Density float64 // g/cm³
}

// ErrNotFound indicates a material key absent from the catalog.
var ErrNotFound = errors.New("material: unknown material")

// catalog is seeded once and never mutated. Order is the display order:
// metals first, then woods, then plastics.
var catalog = []Material{
	{Key: "iron", Name: "Iron", Modulus: 210, Density: 7.87},
	{Key: "steel", Name: "Steel (Mild)", Modulus: 200, Density: 7.85},
	{Key: "stainless_steel", Name: "Stainless Steel", Modulus: 190, Density: 8.00},
	{Key: "aluminum", Name: "Aluminum", Modulus: 69, Density: 2.70},
	{Key: "copper", Name: "Copper", Modulus: 130, Density: 8.96},
	{Key: "brass", Name: "Brass", Modulus: 100, Density: 8.50},
	{Key: "oak_wood", Name: "Oak Wood", Modulus: 11, Density: 0.75},
	{Key: "pine_wood", Name: "Pine Wood", Modulus: 9, Density: 0.55},
	{Key: "teak_wood", Name: "Teak Wood", Modulus: 12, Density: 0.65},
	{Key: "bamboo", Name: "Bamboo", Modulus: 20, Density: 0.60},
	{Key: "plywood", Name: "Plywood", Modulus: 6, Density: 0.55},
	{Key: "pvc", Name: "PVC", Modulus: 3, Density: 1.40},
	{Key: "acrylic", Name: "Acrylic", Modulus: 3.2, Density: 1.18},
}

var byKey = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, m := range catalog {
		idx[m.Key] = i
	}
	return idx
}

// Lookup returns the catalog entry for key, or ErrNotFound.
func Lookup(key string) (Material, error) {
	i, ok := byKey[key]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return catalog[i], nil
}

// List returns every catalog entry in seeded order. The returned slice is a
// copy; callers may reorder or modify it freely.
func List() []Material {
	out := make([]Material, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns the catalog keys in seeded order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, m := range catalog {
		keys[i] = m.Key
	}
	return keys
}
