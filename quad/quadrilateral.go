package quad

import "github.com/clanmonsterxd-cmd/quadcad/geom"

// Quadrilateral is the mutate-in-place facade over the stateless
// solver, for callers that accumulate measurements one at a time (a
// measurement form, an import loop). It holds a constraint set and, on
// a successful Solve, the resolved shape.
//
// Solve is atomic: it computes a fresh Solved value off to the side
// and assigns it only on success, so no caller ever observes a
// half-solved shape. Before re-solving with new measurements, call
// Reset — the solver fills previously empty fields and cannot tell
// "empty because unmeasured" from "empty from a prior run".
//
// Not safe for concurrent mutation; independent instances need no
// coordination.
type Quadrilateral struct {
	constraints Constraints
	solved      *Solved
}

// New returns an empty Quadrilateral: all four sides and all four
// angles unset.
func New() *Quadrilateral {
	return &Quadrilateral{}
}

// SetSideMM records a side length measured in millimeters. It is
// stored as exact integer micrometers, round(mm × 1000).
func (q *Quadrilateral) SetSideMM(s Side, mm float64) {
	q.constraints.SetSideMM(s, mm)
}

// SetAngle records an interior angle in degrees, stored as given.
func (q *Quadrilateral) SetAngle(v Vertex, deg float64) {
	q.constraints.SetAngle(v, deg)
}

// ClearSide removes a side measurement.
func (q *Quadrilateral) ClearSide(s Side) {
	q.constraints.ClearSide(s)
}

// ClearAngle removes an angle measurement.
func (q *Quadrilateral) ClearAngle(v Vertex) {
	q.constraints.ClearAngle(v)
}

// Reset clears all eight measurements and any solved state.
func (q *Quadrilateral) Reset() {
	q.constraints = Constraints{}
	q.solved = nil
}

// Constraints returns a copy of the current measurement set.
func (q *Quadrilateral) Constraints() Constraints {
	return q.constraints
}

// Solve runs the solver over the current measurements. On success the
// resolved shape becomes readable through the accessors below; on
// failure the previous state — solved or not — is left untouched and
// the typed error explains the rejection.
func (q *Quadrilateral) Solve() error {
	s, err := Solve(q.constraints)
	if err != nil {
		return err
	}
	q.solved = s

	return nil
}

// Solved reports whether the shape has been successfully solved.
func (q *Quadrilateral) Solved() bool {
	return q.solved != nil
}

// Shape returns the resolved shape, or ErrNotSolved before a
// successful Solve.
func (q *Quadrilateral) Shape() (*Solved, error) {
	if q.solved == nil {
		return nil, ErrNotSolved
	}

	return q.solved, nil
}

// SideLengthUM returns a side's length in integer micrometers, derived
// from the solved vertex positions (not the stored measurement).
func (q *Quadrilateral) SideLengthUM(s Side) (int64, error) {
	if q.solved == nil {
		return 0, ErrNotSolved
	}

	return q.solved.SideLengthUM(s), nil
}

// Angle returns the solved interior angle at a vertex, in degrees.
func (q *Quadrilateral) Angle(v Vertex) (float64, error) {
	if q.solved == nil {
		return 0, ErrNotSolved
	}

	return q.solved.Angle(v), nil
}

// Vertices returns the four solved corners in micrometers.
func (q *Quadrilateral) Vertices() ([4]geom.Point, error) {
	if q.solved == nil {
		return [4]geom.Point{}, ErrNotSolved
	}

	return q.solved.Vertices(), nil
}

// PointOnSide interpolates along a solved side: ratio 0 is the side's
// first vertex, 1 its second. Consumed by line annotations.
func (q *Quadrilateral) PointOnSide(s Side, ratio float64) (geom.Point, error) {
	if q.solved == nil {
		return geom.Point{}, ErrNotSolved
	}

	return q.solved.PointOnSide(s, ratio)
}
