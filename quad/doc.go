// Package quad solves planar quadrilaterals from partial measurements:
// any subset of the four side lengths (millimeters in, exact integer
// micrometers inside) and the four interior angles (degrees).
//
// 🚀 What does it do?
//
//	Given enough constraints, Solve reconstructs all four vertex
//	coordinates, derives every unmeasured side and angle, and
//	cross-checks redundant measurements against a micrometer
//	tolerance. Not enough — or contradictory — data yields a typed
//	error instead of a shape.
//
// A constraint set is solvable when it matches one of two patterns:
//
//   - all 4 sides + at least 1 angle, or
//   - 3 sides + 2 adjacent angles (angles joined by one side).
//
// The pipeline, in order:
//
//  1. validate   — count knowns, complete a single missing angle from
//     the 360° interior-angle-sum law, reject inconsistent sums
//  2. dispatch   — map the bitmask of known sides × known angles to one
//     of 13 construction strategies, in a fixed priority order
//  3. construct  — place vertices by sequential rotation from two
//     anchors, or by circle-circle intersection when only one angle
//     is known
//  4. closure    — compare the one side not consumed as a placement
//     input against its given value, within max(1 µm, 0.1%)
//  5. derive     — fill the remaining interior angles from the final
//     vertex positions
//
// Two API styles are offered:
//
//	solved, err := quad.Solve(constraints)   // stateless, pure
//
//	q := quad.New()                          // mutate-in-place facade
//	q.SetSideMM(quad.SideAB, 100)
//	q.SetAngle(quad.VertexA, 90)
//	err := q.Solve()                         // atomic: no half-solved state
//
// Determinism: identical constraints produce bit-identical vertices.
// Reflex (concave) corners are not supported; the circle-intersection
// branch keeps a fixed larger-y convexity heuristic, pinned by tests.
package quad
