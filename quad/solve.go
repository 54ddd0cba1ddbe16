package quad

import "github.com/clanmonsterxd-cmd/quadcad/geom"

// Solve reconstructs a quadrilateral from the given constraints.
//
// The pipeline: validate (counts + 360° angle completion) → dispatch
// (strategy selection by known-value masks) → construct (vertex
// placement) → closure check (derived vs. given length of the one side
// not used for placement) → angle derivation. The result is built off
// to the side and returned only on success; c is received by value and
// never mutated, so Solve is a pure function and two calls with
// identical constraints return bit-identical vertices.
//
// Every failure is one of the package's typed errors:
// ErrInsufficientConstraints, ErrAngleSumInvalid,
// ErrInvalidDerivedAngle, ErrUnsupportedCombination,
// ErrGeometricConflict, ErrClosureMismatch.
//
// Complexity: O(1) — fixed-size arithmetic, no allocation beyond the
// result.
func Solve(c Constraints) (*Solved, error) {
	if err := validate(&c); err != nil {
		return nil, err
	}

	r, err := dispatch(&c)
	if err != nil {
		return nil, err
	}

	p, err := r.build(&c)
	if err != nil {
		return nil, err
	}

	if p.hasClosure {
		u, v := p.closure.Endpoints()
		computed := geom.DistanceUM(p.vertices[u], p.vertices[v])
		if expected, ok := c.SideUM(p.closure); ok {
			if err = checkClosure(p.closure, computed, expected); err != nil {
				return nil, err
			}
		}
	}

	s := &Solved{vertices: p.vertices}
	for sd := SideAB; sd <= SideDA; sd++ {
		u, v := sd.Endpoints()
		s.sideUM[sd] = geom.DistanceUM(p.vertices[u], p.vertices[v])
	}
	s.angleDeg = deriveAngles(&c, p.vertices)

	return s, nil
}
