// Package geom provides the 2D primitives the quadrilateral solver is
// built from: distance, linear interpolation along a segment, interior
// angles at a vertex, and circle/ray intersections.
//
// Conventions:
//
//   - Coordinates are float64 micrometers (µm). 1 µm = 10⁻³ mm.
//     Lengths cross back into the exact integer domain through
//     DistanceUM and the MMToUM/UMToMM converters.
//   - Angles are degrees. InteriorAngle always returns the non-reflex
//     representative in [0°, 180°].
//   - All functions are pure and deterministic: no state, no I/O,
//     no hidden tolerance knobs.
//
// Errors:
//   - ErrNoIntersection — two circles (or a ray and a circle) that the
//     caller requires to meet do not; the lengths that produced them
//     are mutually infeasible.
package geom
