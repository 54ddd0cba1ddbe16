package quad

import "github.com/clanmonsterxd-cmd/quadcad/geom"

// Vertex identifies one of the four corners A, B, C, D, labelled
// clockwise.
type Vertex uint8

const (
	VertexA Vertex = iota
	VertexB
	VertexC
	VertexD
)

// vertexNames backs Vertex.String; indexed by the constant values above.
var vertexNames = [4]string{"A", "B", "C", "D"}

func (v Vertex) String() string {
	if int(v) < len(vertexNames) {
		return vertexNames[v]
	}

	return "?"
}

// Side identifies one of the four sides, named after its endpoints in
// clockwise order.
type Side uint8

const (
	SideAB Side = iota
	SideBC
	SideCD
	SideDA
)

var sideNames = [4]string{"AB", "BC", "CD", "DA"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}

	return "??"
}

// Endpoints returns the two vertices a side connects, in clockwise
// order: AB→(A,B), BC→(B,C), CD→(C,D), DA→(D,A).
func (s Side) Endpoints() (Vertex, Vertex) {
	return Vertex(s), Vertex((s + 1) % 4)
}

// Constraints is the solver's input: a mapping from side and vertex
// identifiers to optional measurements, backed by fixed arrays plus
// presence bitmasks so the dispatcher can key on the exact pattern of
// knowns. The zero value is an empty constraint set.
//
// Side lengths are stored as exact integer micrometers; angles as
// degrees. Constraints is a value type: Solve receives a copy and the
// caller's set is never mutated.
type Constraints struct {
	sideUM   [4]int64
	angleDeg [4]float64

	sideMask  uint8
	angleMask uint8
}

// SetSideMM stores a side length given in millimeters, converted to
// integer micrometers via round(mm × 1000).
func (c *Constraints) SetSideMM(s Side, mm float64) {
	c.SetSideUM(s, geom.MMToUM(mm))
}

// SetSideUM stores a side length already expressed in micrometers.
func (c *Constraints) SetSideUM(s Side, um int64) {
	c.sideUM[s] = um
	c.sideMask |= 1 << s
}

// SetAngle stores an interior angle in degrees, as given.
func (c *Constraints) SetAngle(v Vertex, deg float64) {
	c.angleDeg[v] = deg
	c.angleMask |= 1 << v
}

// ClearSide marks a side as unmeasured.
func (c *Constraints) ClearSide(s Side) {
	c.sideUM[s] = 0
	c.sideMask &^= 1 << s
}

// ClearAngle marks an angle as unmeasured.
func (c *Constraints) ClearAngle(v Vertex) {
	c.angleDeg[v] = 0
	c.angleMask &^= 1 << v
}

// SideUM reports a side's length in micrometers and whether it was set.
func (c Constraints) SideUM(s Side) (int64, bool) {
	return c.sideUM[s], c.sideMask&(1<<s) != 0
}

// Angle reports an interior angle in degrees and whether it was set.
func (c Constraints) Angle(v Vertex) (float64, bool) {
	return c.angleDeg[v], c.angleMask&(1<<v) != 0
}

// sideF returns a known side length as float64 micrometers for
// trigonometric placement. Only called by strategies after dispatch
// has proven presence.
func (c Constraints) sideF(s Side) float64 {
	return float64(c.sideUM[s])
}

// Solved is the immutable result of a successful Solve: four vertex
// coordinates plus every side length and interior angle, measured or
// derived. Side lengths are recomputed from the final vertex
// positions, not echoed from the input.
type Solved struct {
	vertices [4]geom.Point
	sideUM   [4]int64
	angleDeg [4]float64
}

// Vertex returns the coordinates of one corner, in micrometers.
func (s *Solved) Vertex(v Vertex) geom.Point {
	return s.vertices[v]
}

// Vertices returns all four corners A, B, C, D in micrometers.
func (s *Solved) Vertices() [4]geom.Point {
	return s.vertices
}

// VerticesMM returns all four corners scaled to millimeters, for
// display-side consumers.
func (s *Solved) VerticesMM() [4]geom.Point {
	var out [4]geom.Point
	for i, p := range s.vertices {
		out[i] = p.Scale(1.0 / geom.MicrometersPerMM)
	}

	return out
}

// SideLengthUM returns a side's length in integer micrometers, derived
// from the final vertex positions.
func (s *Solved) SideLengthUM(sd Side) int64 {
	return s.sideUM[sd]
}

// Angle returns the interior angle at a vertex, in degrees.
func (s *Solved) Angle(v Vertex) float64 {
	return s.angleDeg[v]
}

// PerimeterUM returns the sum of the four side lengths in micrometers.
func (s *Solved) PerimeterUM() int64 {
	return s.sideUM[SideAB] + s.sideUM[SideBC] + s.sideUM[SideCD] + s.sideUM[SideDA]
}

// PointOnSide linearly interpolates between a side's two endpoints.
// ratio must lie in [0, 1]: 0 is the side's first vertex, 1 its second.
// Returns ErrRatioRange otherwise.
func (s *Solved) PointOnSide(sd Side, ratio float64) (geom.Point, error) {
	if ratio < 0 || ratio > 1 {
		return geom.Point{}, ErrRatioRange
	}
	u, v := sd.Endpoints()

	return geom.Lerp(s.vertices[u], s.vertices[v], ratio), nil
}
