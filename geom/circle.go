package geom

import "math"

// CircleIntersection returns an intersection point of the circle around
// c1 with radius r1 and the circle around c2 with radius r2.
//
// Construction: with d the center distance, the perpendicular chord
// sits at a = (r1² − r2² + d²) / (2d) along the center line, at
// half-chord height h = √(r1² − a²). Two intersection points exist in
// general; the one with the larger y-coordinate is returned. That
// choice is a fixed convexity heuristic, not a geometric proof — it
// keeps clockwise-labelled shapes convex in the solver's canonical
// orientation and is pinned by tests.
//
// Returns ErrNoIntersection when the circles are disjoint (d > r1+r2),
// one contains the other (d < |r1−r2|), or the centers coincide.
//
// Complexity: O(1).
func CircleIntersection(c1 Point, r1 float64, c2 Point, r2 float64) (Point, error) {
	d := Distance(c1, c2)
	if d == 0 {
		return Point{}, ErrNoIntersection
	}
	if d > r1+r2 || d < math.Abs(r1-r2) {
		return Point{}, ErrNoIntersection
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r1*r1-a*a))

	// Foot of the chord on the center line.
	mid := c1.Add(c2.Sub(c1).Scale(a / d))

	p1 := Point{
		X: mid.X + h*(c2.Y-c1.Y)/d,
		Y: mid.Y - h*(c2.X-c1.X)/d,
	}
	p2 := Point{
		X: mid.X - h*(c2.Y-c1.Y)/d,
		Y: mid.Y + h*(c2.X-c1.X)/d,
	}

	if p1.Y >= p2.Y {
		return p1, nil
	}

	return p2, nil
}

// RayCircleIntersection returns the point where the ray from origin in
// direction dir (a unit vector) meets the circle around center with
// radius r. When the ray crosses the circle twice, the farther point
// (largest ray parameter) is returned — the same convexity heuristic
// as CircleIntersection's larger-y branch.
//
// Returns ErrNoIntersection when the ray's supporting line misses the
// circle or both crossings lie behind the origin.
//
// Complexity: O(1).
func RayCircleIntersection(origin, dir, center Point, r float64) (Point, error) {
	w := center.Sub(origin)
	proj := dir.X*w.X + dir.Y*w.Y

	disc := proj*proj - (w.X*w.X + w.Y*w.Y - r*r)
	if disc < 0 {
		return Point{}, ErrNoIntersection
	}

	t := proj + math.Sqrt(disc)
	if t < 0 {
		return Point{}, ErrNoIntersection
	}

	return origin.Add(dir.Scale(t)), nil
}
