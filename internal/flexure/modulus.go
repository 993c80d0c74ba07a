package flexure

import (
	"fmt"
	"math"
)

// Unit conversions between bench units (cm, g) and the SI quantities the
// bending formulas are defined in.
const (
	Gravity   = 9.8  // m/s²
	CmToM     = 1e-2 // centimeters → meters
	Cm4ToM4   = 1e-8 // cm⁴ → m⁴
	GramsToKg = 1e-3 // grams → kilograms
	PaToGPa   = 1e-9 // pascals → gigapascals
)

// LoadForce converts an applied mass in grams to its weight in newtons.
func LoadForce(grams float64) float64 {
	return grams * GramsToKg * Gravity
}

// Modulus computes Young's modulus in pascals for one reading.
//
// Inputs are SI: force in newtons, length in meters, inertia in m⁴,
// deflection in meters. The deflection's magnitude enters the formula, so an
// elevated (negative) reading yields the same modulus as a depressed one.
// Fails with ErrZeroInertia or ErrZeroDeflection when a denominator would
// vanish; both leave the other readings of an experiment usable.
func Modulus(bending BendingType, force, length, inertia, deflection float64) (float64, error) {
	if inertia <= 0 {
		return 0, fmt.Errorf("%w: %g m⁴", ErrZeroInertia, inertia)
	}
	if deflection == 0 {
		return 0, ErrZeroDeflection
	}

	depression := math.Abs(deflection)
	switch bending {
	case Uniform:
		// Distributed load per unit length.
		w := force / length
		return 5 * w * length * length * length * length / (384 * inertia * depression), nil
	case NonUniform:
		return force * length * length * length / (48 * inertia * depression), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidBendingType, bending)
}
