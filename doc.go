// Package quadcad reconstructs a planar quadrilateral's four vertex
// coordinates from a partial set of measurements: any subset of its four
// side lengths and four interior angles.
//
// 🚀 What is quadcad?
//
//	A small, deterministic constraint solver for four-sided shapes:
//		• Feed it the sides and angles you measured (tape measure + protractor)
//		• It decides whether the data pins down a closed, consistent shape
//		• On success it returns exact vertex positions plus every side length
//		  and interior angle you did not measure
//
// ✨ Why choose quadcad?
//
//   - Micrometer-exact — side lengths are integer micrometers internally,
//     so repeated trigonometric placement never accumulates drift
//   - Honest failures — every rejection is a typed error carrying the
//     counts, sums, and deviations needed for a precise diagnostic
//   - Pure functions — no global state; solving is a transform from an
//     immutable constraint set to an immutable result
//
// Everything is organized under three subpackages:
//
//	geom/     — 2D primitives: distance, interior angles, circle intersection
//	quad/     — the solver: validation, case dispatch, vertex construction
//	annotate/ — measurement lines drawn across a solved shape
//
// Quick ASCII example:
//
//	    D────────C
//	    │        │        AB=100mm, BC=80mm, DA=80mm, ∠A=∠B=90°
//	    │        │        ⇒ CD=100mm, ∠C=∠D=90°, vertices at
//	    A────────B          (0,0) (100,0) (100,80) (0,80) mm
//
// Dive into the examples/ directory for complete surveying walkthroughs.
//
//	go get github.com/clanmonsterxd-cmd/quadcad/quad
package quadcad
