// Package quad - vertex construction strategies.
//
// Each strategy is a pure function from a validated constraint set to
// four vertex positions. Two families exist:
//
//   - two-angle: anchor one known side on the x-axis, rotate the two
//     flanking sides outward from its endpoints. The segment joining
//     the two independently placed far vertices is the closure side.
//   - one-angle: fix three vertices from the known angle and its two
//     adjacent sides, then pin the fourth by circle-circle
//     intersection of the two remaining side lengths.
//
// Rotation conventions, matching clockwise vertex ordering:
//
//   - at the baseline's first vertex P the flanking side leaves at the
//     interior angle directly: direction (cos ∠P, sin ∠P)
//   - at the baseline's second vertex Q it leaves at the exterior
//     turn: direction (cos(180°−∠Q), sin(180°−∠Q)) from Q
//
// All arithmetic is float64 micrometers; results cross back into the
// integer domain only through geom.DistanceUM.
package quad

import (
	"fmt"
	"math"

	"github.com/clanmonsterxd-cmd/quadcad/geom"
)

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// placeBaseAB anchors side AB: A at the origin, B at (AB, 0).
// D rotates DA out of A by ∠A; C rotates BC out of B by 180°−∠B.
// Closure side: CD.
func placeBaseAB(c *Constraints) (placement, error) {
	ab, bc, da := c.sideF(SideAB), c.sideF(SideBC), c.sideF(SideDA)
	angleA := radians(c.angleDeg[VertexA])
	angleB := radians(180.0 - c.angleDeg[VertexB])

	var p placement
	p.vertices[VertexA] = geom.Point{}
	p.vertices[VertexB] = geom.Point{X: ab}
	p.vertices[VertexD] = geom.Point{X: da * math.Cos(angleA), Y: da * math.Sin(angleA)}
	p.vertices[VertexC] = geom.Point{X: ab + bc*math.Cos(angleB), Y: bc * math.Sin(angleB)}
	p.closure, p.hasClosure = SideCD, true

	return p, nil
}

// placeBaseBC anchors side BC: B at the origin, C at (BC, 0).
// A rotates AB out of B by ∠B (mirrored across the baseline start);
// D rotates CD out of C by 180°−∠C. Closure side: DA.
func placeBaseBC(c *Constraints) (placement, error) {
	bc, cd, ab := c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideAB)
	angleB := radians(c.angleDeg[VertexB])
	angleC := radians(180.0 - c.angleDeg[VertexC])

	var p placement
	p.vertices[VertexB] = geom.Point{}
	p.vertices[VertexC] = geom.Point{X: bc}
	p.vertices[VertexA] = geom.Point{X: -ab * math.Cos(angleB), Y: ab * math.Sin(angleB)}
	p.vertices[VertexD] = geom.Point{X: bc + cd*math.Cos(angleC), Y: cd * math.Sin(angleC)}
	p.closure, p.hasClosure = SideDA, true

	return p, nil
}

// placeBaseCD anchors side CD: C at the origin, D at (CD, 0).
// B rotates BC out of C by ∠C; A rotates DA out of D by 180°−∠D.
// Closure side: AB.
func placeBaseCD(c *Constraints) (placement, error) {
	cd, da, bc := c.sideF(SideCD), c.sideF(SideDA), c.sideF(SideBC)
	angleC := radians(c.angleDeg[VertexC])
	angleD := radians(180.0 - c.angleDeg[VertexD])

	var p placement
	p.vertices[VertexC] = geom.Point{}
	p.vertices[VertexD] = geom.Point{X: cd}
	p.vertices[VertexB] = geom.Point{X: -bc * math.Cos(angleC), Y: bc * math.Sin(angleC)}
	p.vertices[VertexA] = geom.Point{X: cd + da*math.Cos(angleD), Y: da * math.Sin(angleD)}
	p.closure, p.hasClosure = SideAB, true

	return p, nil
}

// placeBaseDA anchors side DA: D at the origin, A at (DA, 0).
// C rotates CD out of D by ∠D; B rotates AB out of A by 180°−∠A.
// Closure side: BC. Used by the all-sides D&A pattern.
func placeBaseDA(c *Constraints) (placement, error) {
	da, ab, cd := c.sideF(SideDA), c.sideF(SideAB), c.sideF(SideCD)
	angleD := radians(c.angleDeg[VertexD])
	angleA := radians(180.0 - c.angleDeg[VertexA])

	var p placement
	p.vertices[VertexD] = geom.Point{}
	p.vertices[VertexA] = geom.Point{X: da}
	p.vertices[VertexC] = geom.Point{X: -cd * math.Cos(angleD), Y: cd * math.Sin(angleD)}
	p.vertices[VertexB] = geom.Point{X: da + ab*math.Cos(angleA), Y: ab * math.Sin(angleA)}
	p.closure, p.hasClosure = SideBC, true

	return p, nil
}

// placeMissingAB handles 3 sides BC, CD, DA with angles B and C:
// B at the origin, C at (BC, 0), D rotated out of C by 180°−∠C. A is
// not reachable by rotation alone (its flanking side AB is the missing
// one), so it is pinned where the interior ray out of B at ∠B meets
// the circle of radius DA around D; the farther crossing is taken,
// mirroring the convexity heuristic of the circle-circle family.
// Closure side: AB.
func placeMissingAB(c *Constraints) (placement, error) {
	bc, cd, da := c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideDA)
	angleB := radians(c.angleDeg[VertexB])
	angleC := radians(180.0 - c.angleDeg[VertexC])

	var p placement
	p.vertices[VertexB] = geom.Point{}
	p.vertices[VertexC] = geom.Point{X: bc}
	p.vertices[VertexD] = geom.Point{X: bc + cd*math.Cos(angleC), Y: cd * math.Sin(angleC)}

	dir := geom.Point{X: -math.Cos(angleB), Y: math.Sin(angleB)}
	a, err := geom.RayCircleIntersection(p.vertices[VertexB], dir, p.vertices[VertexD], da)
	if err != nil {
		return placement{}, fmt.Errorf("%w: placing A from angle B and side DA: %v", ErrGeometricConflict, err)
	}
	p.vertices[VertexA] = a
	p.closure, p.hasClosure = SideAB, true

	return p, nil
}

// placeOneAngleA fixes A, B, D from ∠A and its two adjacent sides,
// then pins C at the BC / CD circle intersection.
func placeOneAngleA(c *Constraints) (placement, error) {
	ab, bc, cd, da := c.sideF(SideAB), c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideDA)
	angleA := radians(c.angleDeg[VertexA])

	var p placement
	p.vertices[VertexA] = geom.Point{}
	p.vertices[VertexB] = geom.Point{X: ab}
	p.vertices[VertexD] = geom.Point{X: da * math.Cos(angleA), Y: da * math.Sin(angleA)}

	point, err := geom.CircleIntersection(p.vertices[VertexB], bc, p.vertices[VertexD], cd)
	if err != nil {
		return placement{}, fmt.Errorf("%w: placing C from sides BC and CD: %v", ErrGeometricConflict, err)
	}
	p.vertices[VertexC] = point

	return p, nil
}

// placeOneAngleB fixes B, A, C from ∠B, then pins D at the DA / CD
// circle intersection.
func placeOneAngleB(c *Constraints) (placement, error) {
	ab, bc, cd, da := c.sideF(SideAB), c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideDA)
	angleB := radians(180.0 - c.angleDeg[VertexB])

	var p placement
	p.vertices[VertexB] = geom.Point{}
	p.vertices[VertexA] = geom.Point{X: -ab}
	p.vertices[VertexC] = geom.Point{X: bc * math.Cos(angleB), Y: bc * math.Sin(angleB)}

	point, err := geom.CircleIntersection(p.vertices[VertexA], da, p.vertices[VertexC], cd)
	if err != nil {
		return placement{}, fmt.Errorf("%w: placing D from sides DA and CD: %v", ErrGeometricConflict, err)
	}
	p.vertices[VertexD] = point

	return p, nil
}

// placeOneAngleC fixes C, B, D from ∠C, then pins A at the AB / DA
// circle intersection.
func placeOneAngleC(c *Constraints) (placement, error) {
	ab, bc, cd, da := c.sideF(SideAB), c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideDA)
	angleC := radians(180.0 - c.angleDeg[VertexC])

	var p placement
	p.vertices[VertexC] = geom.Point{}
	p.vertices[VertexB] = geom.Point{X: -bc}
	p.vertices[VertexD] = geom.Point{X: cd * math.Cos(angleC), Y: cd * math.Sin(angleC)}

	point, err := geom.CircleIntersection(p.vertices[VertexB], ab, p.vertices[VertexD], da)
	if err != nil {
		return placement{}, fmt.Errorf("%w: placing A from sides AB and DA: %v", ErrGeometricConflict, err)
	}
	p.vertices[VertexA] = point

	return p, nil
}

// placeOneAngleD fixes D, C, A from ∠D, then pins B at the AB / BC
// circle intersection.
func placeOneAngleD(c *Constraints) (placement, error) {
	ab, bc, cd, da := c.sideF(SideAB), c.sideF(SideBC), c.sideF(SideCD), c.sideF(SideDA)
	angleD := radians(180.0 - c.angleDeg[VertexD])

	var p placement
	p.vertices[VertexD] = geom.Point{}
	p.vertices[VertexC] = geom.Point{X: -cd}
	p.vertices[VertexA] = geom.Point{X: da * math.Cos(angleD), Y: da * math.Sin(angleD)}

	point, err := geom.CircleIntersection(p.vertices[VertexA], ab, p.vertices[VertexC], bc)
	if err != nil {
		return placement{}, fmt.Errorf("%w: placing B from sides AB and BC: %v", ErrGeometricConflict, err)
	}
	p.vertices[VertexB] = point

	return p, nil
}
