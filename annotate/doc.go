// Package annotate places construction lines across a solved
// quadrilateral.
//
// 🚀 What this package delivers
//
//   - Line — a segment anchored to two (side, ratio) positions on the
//     shape's boundary, independent of the shape's actual dimensions.
//   - Line.Resolve — turns the anchors into concrete micrometer
//     coordinates against a quad.Solved shape, with the segment's
//     length.
//
// ✨ Why ratios, not coordinates
//
// A line stored as "40% along AB to 40% along CD" survives re-solving
// the shape with corrected measurements: the anchors slide with the
// sides. Absolute coordinates would go stale on every Solve.
//
// Resolution fails only on a nil shape (ErrNilShape) or an anchor ratio
// outside [0, 1] (quad.ErrRatioRange, passed through).
package annotate
