// Package analysis judges a measured Young's modulus against the catalog
// reference for the specimen's material.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/banitsriram/young-modulus/internal/material"
)

// ErrNonPositiveExpected indicates reference data unusable as a comparison
// baseline. The seeded catalog never triggers it.
var ErrNonPositiveExpected = errors.New("analysis: expected modulus must be positive")

// Band is the qualitative agreement between measurement and reference.
type Band int

const (
	Good     Band = iota // within experimental scatter
	Moderate             // noticeable but explainable deviation
	Large                // deviation that points at the setup itself
)

// Band thresholds in percent difference. Both boundaries belong to the
// moderate band: diff < 10 is good, 10..25 moderate, above 25 large.
const (
	GoodAgreementMax     = 10.0
	ModerateDeviationMax = 25.0
)

func (b Band) String() string {
	switch b {
	case Good:
		return "good agreement"
	case Moderate:
		return "moderate deviation"
	case Large:
		return "large deviation"
	}
	return fmt.Sprintf("band(%d)", int(b))
}

// Outcome captures one comparison. All moduli are in GPa.
type Outcome struct {
	Calculated  float64
	Expected    float64
	PercentDiff float64
	Band        Band
}

// Compare contrasts an averaged measured modulus with the material's
// reference value and classifies the discrepancy.
func Compare(calculated float64, mat material.Material) (Outcome, error) {
	if mat.Modulus <= 0 {
		return Outcome{}, fmt.Errorf("%w: %q has %g GPa", ErrNonPositiveExpected, mat.Key, mat.Modulus)
	}

	diff := math.Abs(calculated-mat.Modulus) / mat.Modulus * 100
	return Outcome{
		Calculated:  calculated,
		Expected:    mat.Modulus,
		PercentDiff: diff,
		Band:        Classify(diff),
	}, nil
}

// Classify maps a percent difference onto its band.
func Classify(percentDiff float64) Band {
	switch {
	case percentDiff < GoodAgreementMax:
		return Good
	case percentDiff <= ModerateDeviationMax:
		return Moderate
	}
	return Large
}
