// Package quad - constraint validation ahead of dispatch.
//
// This file decides whether a constraint set can pin down a shape at
// all, and completes a single missing angle from the 360° interior-
// angle-sum law. It never places vertices.
//
// Design principles (shared across the package):
//   - Deterministic, side-effect free except for the documented angle
//     completion into the local Constraints copy.
//   - No logging, no panics on user input - only errors from errors.go.
//   - O(1): four sides, four angles, fixed loops.
package quad

import (
	"math/bits"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validate checks solvability and completes the angle set on the local
// copy c. On return either c holds a constraint set some strategy can
// consume, or the error explains why none can.
//
// Contract (in order):
//   - solvable iff 4 sides + ≥1 angle, or 3 sides + ≥2 angles
//     including an adjacent pair; otherwise InsufficientConstraintsError
//   - 4 angles given: their sum must be within 0.5° of 360°,
//     otherwise AngleSumError
//   - 3 angles given: the missing one becomes 360° − sum, must lie
//     strictly in (0°, 360°) or DerivedAngleError, and is assigned to
//     the first unset angle in A, B, C, D order
//   - ≤2 angles given: no completion; dispatch handles the rest
func validate(c *Constraints) error {
	sides := bits.OnesCount8(c.sideMask)
	angles := bits.OnesCount8(c.angleMask)

	solvable := (sides == 4 && angles >= 1) ||
		(sides == 3 && angles >= 2 && hasAdjacentAnglePair(c.angleMask))
	if !solvable {
		return &InsufficientConstraintsError{SidesGiven: sides, AnglesGiven: angles}
	}

	switch angles {
	case 4:
		sum := floats.Sum(c.angleDeg[:])
		if !scalar.EqualWithinAbs(sum, angleSumTargetDeg, angleSumToleranceDeg) {
			return &AngleSumError{Sum: sum}
		}
	case 3:
		known := make([]float64, 0, 3)
		for v := VertexA; v <= VertexD; v++ {
			if deg, ok := c.Angle(v); ok {
				known = append(known, deg)
			}
		}
		missing := angleSumTargetDeg - floats.Sum(known)
		if missing <= 0 || missing >= angleSumTargetDeg {
			return &DerivedAngleError{Value: missing}
		}
		for v := VertexA; v <= VertexD; v++ {
			if _, ok := c.Angle(v); !ok {
				c.SetAngle(v, missing)
				break
			}
		}
	}

	return nil
}

// hasAdjacentAnglePair reports whether the angle mask contains two
// angles joined by a single side, tested in {A,B}, {B,C}, {C,D}, {D,A}
// order.
func hasAdjacentAnglePair(angleMask uint8) bool {
	for _, pair := range adjacentAnglePairs {
		if angleMask&pair == pair {
			return true
		}
	}

	return false
}
