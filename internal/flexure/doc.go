// Package flexure implements the static beam-bending relations used to
// derive Young's modulus from deflection measurements.
//
// The package provides the closed-form pieces of the computation:
//
//   - [MomentOfInertia]: second moment of area of a rectangular cross-section
//   - [Deflection]: signed depression of the loaded point
//   - [LoadForce]: gravitational force of an applied mass
//   - [Modulus]: Young's modulus for a single reading under either loading mode
//
// # Loading modes
//
// [Uniform] approximates the load as distributed along the span and uses
// Y = 5wL⁴/(384·I·δ) with w the load per unit length. [NonUniform] places the
// load at midspan and uses Y = WL³/(48·I·δ).
//
// # Units
//
// Bench measurements arrive in centimeters and grams. [Modulus] operates in
// SI (newtons, meters, m⁴) and returns pascals; the constants [CmToM],
// [Cm4ToM4], [GramsToKg] and [PaToGPa] bridge the two.
package flexure
