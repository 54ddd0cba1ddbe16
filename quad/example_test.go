package quad_test

import (
	"fmt"

	"github.com/clanmonsterxd-cmd/quadcad/geom"
	"github.com/clanmonsterxd-cmd/quadcad/quad"
)

// ExampleSolve reconstructs a 100×80 mm rectangle from three measured
// sides and two measured corners; the fourth side and the remaining
// angles come out of the solver.
func ExampleSolve() {
	var c quad.Constraints
	c.SetSideMM(quad.SideAB, 100)
	c.SetSideMM(quad.SideBC, 80)
	c.SetSideMM(quad.SideDA, 80)
	c.SetAngle(quad.VertexA, 90)
	c.SetAngle(quad.VertexB, 90)

	s, err := quad.Solve(c)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("CD      = %.1f mm\n", geom.UMToMM(s.SideLengthUM(quad.SideCD)))
	fmt.Printf("angle C = %.1f deg\n", s.Angle(quad.VertexC))
	fmt.Printf("angle D = %.1f deg\n", s.Angle(quad.VertexD))

	// Output:
	// CD      = 100.0 mm
	// angle C = 90.0 deg
	// angle D = 90.0 deg
}

// ExampleSolve_insufficient shows the typed rejection for an
// under-measured shape.
func ExampleSolve_insufficient() {
	var c quad.Constraints
	c.SetSideMM(quad.SideAB, 100)
	c.SetSideMM(quad.SideBC, 80)

	_, err := quad.Solve(c)
	fmt.Println(err)

	// Output:
	// quad: insufficient constraints: 2 sides and 0 angles given (need 4 sides + at least 1 angle, or 3 sides + 2 adjacent angles)
}

// ExampleQuadrilateral accumulates measurements through the stateful
// facade and reads interpolated points off the solved shape.
func ExampleQuadrilateral() {
	q := quad.New()
	q.SetSideMM(quad.SideAB, 100)
	q.SetSideMM(quad.SideBC, 80)
	q.SetSideMM(quad.SideDA, 80)
	q.SetAngle(quad.VertexA, 90)
	q.SetAngle(quad.VertexB, 90)

	if err := q.Solve(); err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	mid, _ := q.PointOnSide(quad.SideAB, 0.5)
	fmt.Printf("midpoint of AB = (%.1f, %.1f) mm\n",
		geom.UMToMM(int64(mid.X)), geom.UMToMM(int64(mid.Y)))

	// Output:
	// midpoint of AB = (50.0, 0.0) mm
}
