// Package experiment runs a complete bending experiment: it validates the
// setup, derives the beam's moment of inertia, computes a modulus per
// reading, averages the survivors and compares the result against the
// material's documented value.
package experiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/banitsriram/young-modulus/internal/analysis"
	"github.com/banitsriram/young-modulus/internal/flexure"
	"github.com/banitsriram/young-modulus/internal/material"
)

// ErrEmptyExperiment is returned when no readings are available to
// average, either because none were supplied or because every one of
// them was excluded.
var ErrEmptyExperiment = errors.New("experiment: no readings to average")

// Config describes one full bench run.
type Config struct {
	Material material.Material
	Dims     flexure.Dimensions
	Bending  flexure.BendingType
	Readings []flexure.Reading
}

// Run executes the experiment described by cfg.
//
// Setup problems (bad dimensions, non-positive loads, no readings) abort
// the run. A zero deflection only excludes its own reading; the average
// is taken over the readings that survive. Run fails with
// [ErrEmptyExperiment] when nothing survives.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Dims.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Readings) == 0 {
		return nil, fmt.Errorf("%w: none supplied", ErrEmptyExperiment)
	}
	for i, r := range cfg.Readings {
		if r.Load <= 0 {
			return nil, fmt.Errorf("%w: reading %d has load %g g", flexure.ErrInvalidLoad, i+1, r.Load)
		}
	}

	inertia, err := flexure.MomentOfInertia(cfg.Dims.Breadth, cfg.Dims.Width)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Material: cfg.Material,
		Dims:     cfg.Dims,
		Bending:  cfg.Bending,
		Inertia:  inertia,
		Readings: make([]ReadingResult, 0, len(cfg.Readings)),
	}

	lengthM := cfg.Dims.Length * flexure.CmToM
	inertiaM4 := inertia * flexure.Cm4ToM4

	var sum float64
	for i, r := range cfg.Readings {
		rr := ReadingResult{
			Index:      i + 1,
			Load:       r.Load,
			Initial:    r.Initial,
			Final:      r.Final,
			Deflection: r.Deflection(),
		}
		force := flexure.LoadForce(r.Load)
		pa, err := flexure.Modulus(cfg.Bending, force, lengthM, inertiaM4, rr.Deflection*flexure.CmToM)
		if err != nil {
			rr.Err = err
		} else {
			rr.Modulus = pa * flexure.PaToGPa
			sum += rr.Modulus
			res.Valid++
		}
		res.Readings = append(res.Readings, rr)
	}

	if res.Valid == 0 {
		return nil, fmt.Errorf("%w: all %d readings excluded", ErrEmptyExperiment, len(cfg.Readings))
	}
	res.Mean = sum / float64(res.Valid)
	res.Warnings = diagnose(res.Readings)

	out, err := analysis.Compare(res.Mean, cfg.Material)
	if err != nil {
		return nil, err
	}
	res.Outcome = out
	return res, nil
}

// diagnose inspects the surviving readings for physically implausible
// patterns: deflections that change sign mid-run, and deflections whose
// magnitude fails to grow under a heavier load.
func diagnose(readings []ReadingResult) []string {
	var valid []ReadingResult
	for _, r := range readings {
		if !r.Excluded() {
			valid = append(valid, r)
		}
	}
	if len(valid) < 2 {
		return nil
	}

	var warnings []string
	first := valid[0]
	for _, r := range valid[1:] {
		if math.Signbit(r.Deflection) != math.Signbit(first.Deflection) {
			warnings = append(warnings, fmt.Sprintf(
				"reading %d: deflection sign differs from reading %d; check the scale direction",
				r.Index, first.Index))
		}
	}
	for i := 1; i < len(valid); i++ {
		prev, cur := valid[i-1], valid[i]
		if cur.Load > prev.Load && math.Abs(cur.Deflection) <= math.Abs(prev.Deflection) {
			warnings = append(warnings, fmt.Sprintf(
				"reading %d: deflection did not grow over reading %d despite the heavier load",
				cur.Index, prev.Index))
		}
	}
	return warnings
}
