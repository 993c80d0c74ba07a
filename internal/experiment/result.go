package experiment

import (
	"github.com/banitsriram/young-modulus/internal/analysis"
	"github.com/banitsriram/young-modulus/internal/flexure"
	"github.com/banitsriram/young-modulus/internal/material"
)

// ReadingResult is one reading with its derived quantities. A non-nil Err
// marks the reading as excluded from the averaged modulus.
type ReadingResult struct {
	Index      int     // 1-based reading number, in collection order
	Load       float64 // applied mass, grams
	Initial    float64 // zero-load scale position, cm
	Final      float64 // loaded scale position, cm
	Deflection float64 // signed depression, cm
	Modulus    float64 // GPa, zero when excluded
	Err        error
}

// Excluded reports whether this reading was dropped from the average.
func (r ReadingResult) Excluded() bool {
	return r.Err != nil
}

// Result is the immutable outcome of one experiment run.
type Result struct {
	Material material.Material
	Dims     flexure.Dimensions
	Bending  flexure.BendingType
	Inertia  float64 // moment of inertia, cm⁴

	Readings []ReadingResult
	Valid    int      // readings contributing to Mean
	Mean     float64  // averaged modulus, GPa
	Warnings []string // plausibility findings, never fatal

	Outcome analysis.Outcome
}

// Excluded returns how many readings were dropped from the average.
func (r *Result) Excluded() int {
	return len(r.Readings) - r.Valid
}
