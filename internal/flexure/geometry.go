package flexure

import "fmt"

// MomentOfInertia computes the second moment of area of a rectangular
// cross-section about its bending axis, I = b·w³/12. The result carries the
// fourth power of whatever length unit the inputs share (cm in, cm⁴ out).
func MomentOfInertia(breadth, width float64) (float64, error) {
	if breadth <= 0 {
		return 0, fmt.Errorf("%w: breadth %g", ErrInvalidDimension, breadth)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: width %g", ErrInvalidDimension, width)
	}
	return breadth * width * width * width / 12, nil
}
