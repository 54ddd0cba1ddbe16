package quad

import "github.com/clanmonsterxd-cmd/quadcad/geom"

// deriveAngles fills every interior angle the caller did not measure
// from the final vertex positions; given angles (including the one
// completed by the 360° sum law) pass through untouched.
//
// Each unset angle comes from the previous, current and next vertex in
// clockwise order, folded to the non-reflex representative by
// geom.InteriorAngle. The fold assumes convex corners; see the package
// documentation for the reflex caveat.
func deriveAngles(c *Constraints, vertices [4]geom.Point) [4]float64 {
	var out [4]float64
	for v := VertexA; v <= VertexD; v++ {
		if deg, ok := c.Angle(v); ok {
			out[v] = deg
			continue
		}
		prev := vertices[(v+3)%4]
		next := vertices[(v+1)%4]
		out[v] = geom.InteriorAngle(prev, vertices[v], next)
	}

	return out
}
