// Package quad shared numeric constants, kept in one place so the
// tolerance model reads as a single contract.
package quad

const (
	// angleSumTargetDeg is the interior-angle sum of every simple
	// quadrilateral.
	angleSumTargetDeg = 360.0

	// angleSumToleranceDeg bounds how far four user-given angles may
	// deviate from the 360° sum before the set is rejected.
	angleSumToleranceDeg = 0.5

	// closureRelTolerance is the relative part of the closure gate:
	// a derived side may deviate from its given value by 0.1%.
	closureRelTolerance = 1e-3

	// minToleranceUM floors the closure gate at one micrometer so
	// tiny sides are not held to sub-representable precision.
	minToleranceUM = 1
)

// Bitmask constants for the dispatcher's (sides × angles) keying.
// Side bits follow the Side constants, angle bits the Vertex constants.
const (
	maskSideAB = uint8(1) << SideAB
	maskSideBC = uint8(1) << SideBC
	maskSideCD = uint8(1) << SideCD
	maskSideDA = uint8(1) << SideDA

	maskAllSides = maskSideAB | maskSideBC | maskSideCD | maskSideDA

	maskAngleA = uint8(1) << VertexA
	maskAngleB = uint8(1) << VertexB
	maskAngleC = uint8(1) << VertexC
	maskAngleD = uint8(1) << VertexD
)

// adjacentAnglePairs lists the four angle pairs joined by a single
// side, in the fixed order the dispatcher tests them: {A,B}, {B,C},
// {C,D}, {D,A}.
var adjacentAnglePairs = [4]uint8{
	maskAngleA | maskAngleB,
	maskAngleB | maskAngleC,
	maskAngleC | maskAngleD,
	maskAngleD | maskAngleA,
}
