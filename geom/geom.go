package geom

import "math"

// Point is a 2D coordinate in micrometers. It is an intermediate
// representation used during vertex construction; exact lengths are
// carried as integer micrometers, not as Point deltas.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Distance returns the Euclidean distance between p1 and p2.
//
// Complexity: O(1).
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// DistanceUM returns the Euclidean distance between p1 and p2 rounded
// to the nearest integer micrometer. All length bookkeeping in the
// solver goes through this single rounding point.
func DistanceUM(p1, p2 Point) int64 {
	return int64(math.Round(Distance(p1, p2)))
}

// Lerp linearly interpolates between a and b: t=0 yields a, t=1 yields b.
// Callers are responsible for range-checking t.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// InteriorAngle returns the interior angle in degrees at vertex,
// between the rays vertex→prev and vertex→next.
//
// The signed angle comes from the two-argument arctangent of the cross
// and dot products of the two rays, normalized into [0°, 360°), then
// folded to the non-reflex representative: a raw value above 180°
// becomes 360° minus it. The fold assumes a convex corner; reflex
// quadrilaterals are outside this function's contract.
//
// Complexity: O(1).
func InteriorAngle(prev, vertex, next Point) float64 {
	u := prev.Sub(vertex)
	v := next.Sub(vertex)

	dot := u.X*v.X + u.Y*v.Y
	cross := u.X*v.Y - u.Y*v.X

	deg := math.Atan2(cross, dot) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360.0
	}
	if deg > 180.0 {
		deg = 360.0 - deg
	}

	return deg
}
