package flexure

import (
	"fmt"
	"strings"
)

// BendingType selects the loading mode and therefore the modulus formula.
type BendingType int

const (
	// Uniform bending: load distributed along the span.
	Uniform BendingType = iota
	// NonUniform bending: point load at midspan.
	NonUniform
)

func (b BendingType) String() string {
	switch b {
	case Uniform:
		return "uniform"
	case NonUniform:
		return "non-uniform"
	}
	return fmt.Sprintf("bending(%d)", int(b))
}

// ParseBendingType maps a user-facing name to a BendingType. It accepts the
// canonical names plus the common shorthands "point" and "distributed".
func ParseBendingType(s string) (BendingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "distributed":
		return Uniform, nil
	case "non-uniform", "nonuniform", "non_uniform", "point":
		return NonUniform, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBendingType, s)
}

// Dimensions describes the specimen rod in centimeters.
type Dimensions struct {
	Length  float64 // span between the supports
	Breadth float64 // horizontal cross-section side
	Width   float64 // vertical cross-section side (thickness)
}

// Validate reports the first non-positive dimension.
func (d Dimensions) Validate() error {
	switch {
	case d.Length <= 0:
		return fmt.Errorf("%w: length %g cm", ErrInvalidDimension, d.Length)
	case d.Breadth <= 0:
		return fmt.Errorf("%w: breadth %g cm", ErrInvalidDimension, d.Breadth)
	case d.Width <= 0:
		return fmt.Errorf("%w: width %g cm", ErrInvalidDimension, d.Width)
	}
	return nil
}

// Reading is a single bench measurement: the scale position before loading,
// the position under load, and the total applied mass. Positions share one
// linear unit (centimeters); the load is in grams.
type Reading struct {
	Load    float64 // applied mass, grams
	Initial float64 // zero-load scale position, cm
	Final   float64 // loaded scale position, cm
}

// Deflection returns the signed depression of this reading in centimeters.
func (r Reading) Deflection() float64 {
	return Deflection(r.Initial, r.Final)
}

// Deflection is the displacement of the loaded point from its rest position.
// The sign is preserved: positive means downward depression, negative means
// upward elevation.
func Deflection(initial, final float64) float64 {
	return final - initial
}
