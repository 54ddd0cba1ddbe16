// Package quad - case dispatch.
//
// The original long conditional ladder over "which sides and angles do
// we have" is replaced by one ordered table keyed on (side mask,
// angle mask, forbidden-side mask). The first satisfied row wins, even
// when later rows would also match, which makes the construction
// orientation deterministic for over-specified inputs.
package quad

import "github.com/clanmonsterxd-cmd/quadcad/geom"

// placement is a strategy's output: all four vertex positions plus the
// identity of the side that was not consumed as a placement input.
// That side is the closure gate's subject; strategies that consume all
// four sides (the circle-intersection family) have none.
type placement struct {
	vertices   [4]geom.Point
	closure    Side
	hasClosure bool
}

// constructFn places all four vertices from a validated constraint
// set. Pure: no access to anything but c.
type constructFn func(c *Constraints) (placement, error)

// rule is one dispatch table row. A constraint set matches when it has
// every needed side and angle bit and none of the forbidden side bits.
type rule struct {
	name       string
	needSides  uint8
	needAngles uint8
	missSides  uint8
	build      constructFn
}

// dispatchTable is evaluated top to bottom:
//
//  1. all 4 sides + an adjacent angle pair, pairs in A&B, B&C, C&D,
//     D&A order
//  2. all 4 sides + a single usable angle, in A, B, C, D order
//  3. 3 sides + 2 adjacent angles, one row per (missing side,
//     available pair) combination
//
// Rows 1-4 deliberately outrank rows 5-8 so that an adjacent pair is
// always preferred over the circle-intersection fallback.
var dispatchTable = []rule{
	{"4 sides + angles A,B", maskAllSides, maskAngleA | maskAngleB, 0, placeBaseAB},
	{"4 sides + angles B,C", maskAllSides, maskAngleB | maskAngleC, 0, placeBaseBC},
	{"4 sides + angles C,D", maskAllSides, maskAngleC | maskAngleD, 0, placeBaseCD},
	{"4 sides + angles D,A", maskAllSides, maskAngleD | maskAngleA, 0, placeBaseDA},

	{"4 sides + angle A", maskAllSides, maskAngleA, 0, placeOneAngleA},
	{"4 sides + angle B", maskAllSides, maskAngleB, 0, placeOneAngleB},
	{"4 sides + angle C", maskAllSides, maskAngleC, 0, placeOneAngleC},
	{"4 sides + angle D", maskAllSides, maskAngleD, 0, placeOneAngleD},

	{"sides AB,BC,DA + angles A,B", maskSideAB | maskSideBC | maskSideDA, maskAngleA | maskAngleB, maskSideCD, placeBaseAB},
	{"sides AB,BC,CD + angles B,C", maskSideAB | maskSideBC | maskSideCD, maskAngleB | maskAngleC, maskSideDA, placeBaseBC},
	{"sides BC,CD,DA + angles C,D", maskSideBC | maskSideCD | maskSideDA, maskAngleC | maskAngleD, maskSideAB, placeBaseCD},
	{"sides AB,CD,DA + angles D,A", maskSideAB | maskSideCD | maskSideDA, maskAngleD | maskAngleA, maskSideBC, placeBaseDA},
	{"sides BC,CD,DA + angles B,C", maskSideBC | maskSideCD | maskSideDA, maskAngleB | maskAngleC, maskSideAB, placeMissingAB},
}

// dispatch selects the first table row the constraint set satisfies.
// Falls through to ErrUnsupportedCombination for recognized-but-
// unimplemented patterns (e.g. 3 sides where the available pair does
// not flank the missing side).
//
// Complexity: O(1) — at most 13 mask comparisons.
func dispatch(c *Constraints) (*rule, error) {
	for i := range dispatchTable {
		r := &dispatchTable[i]
		if c.sideMask&r.needSides != r.needSides {
			continue
		}
		if c.angleMask&r.needAngles != r.needAngles {
			continue
		}
		if c.sideMask&r.missSides != 0 {
			continue
		}

		return r, nil
	}

	return nil, ErrUnsupportedCombination
}
