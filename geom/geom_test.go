package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/clanmonsterxd-cmd/quadcad/geom"
)

const angleTol = 1e-9

// TestDistance verifies Euclidean distance on axis-aligned and
// Pythagorean inputs.
func TestDistance(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 geom.Point
		want   float64
	}{
		{"Zero", geom.Point{}, geom.Point{}, 0},
		{"Horizontal", geom.Point{X: 1}, geom.Point{X: 4}, 3},
		{"Vertical", geom.Point{Y: -2}, geom.Point{Y: 3}, 5},
		{"Pythagorean", geom.Point{}, geom.Point{X: 3, Y: 4}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.Distance(tc.p1, tc.p2); !scalar.EqualWithinAbs(got, tc.want, angleTol) {
				t.Errorf("Distance(%v,%v) = %v; want %v", tc.p1, tc.p2, got, tc.want)
			}
		})
	}
}

// TestDistanceUM verifies rounding to the nearest integer micrometer.
func TestDistanceUM(t *testing.T) {
	assert.Equal(t, int64(5), geom.DistanceUM(geom.Point{}, geom.Point{X: 3, Y: 4}))
	// √2 ≈ 1.414 rounds down to 1.
	assert.Equal(t, int64(1), geom.DistanceUM(geom.Point{}, geom.Point{X: 1, Y: 1}))
	// √8 ≈ 2.828 rounds up to 3.
	assert.Equal(t, int64(3), geom.DistanceUM(geom.Point{}, geom.Point{X: 2, Y: 2}))
}

// TestLerp checks endpoint and midpoint interpolation.
func TestLerp(t *testing.T) {
	a := geom.Point{X: 10, Y: 20}
	b := geom.Point{X: 30, Y: -20}

	assert.Equal(t, a, geom.Lerp(a, b, 0))
	assert.Equal(t, b, geom.Lerp(a, b, 1))
	assert.Equal(t, geom.Point{X: 20, Y: 0}, geom.Lerp(a, b, 0.5))
}

// TestInteriorAngle verifies the fold to the non-reflex representative
// in both winding directions.
func TestInteriorAngle(t *testing.T) {
	origin := geom.Point{}
	cases := []struct {
		name       string
		prev, next geom.Point
		want       float64
	}{
		{"RightAngleCCW", geom.Point{X: 1}, geom.Point{Y: 1}, 90},
		{"RightAngleCW", geom.Point{Y: 1}, geom.Point{X: 1}, 90},
		{"FortyFive", geom.Point{X: 1, Y: 1}, geom.Point{X: 1}, 45},
		{"Straight", geom.Point{X: -1}, geom.Point{X: 1}, 180},
		{"Obtuse", geom.Point{X: -1, Y: 1}, geom.Point{X: 1}, 135},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.InteriorAngle(tc.prev, origin, tc.next)
			if !scalar.EqualWithinAbs(got, tc.want, angleTol) {
				t.Errorf("InteriorAngle(%v, origin, %v) = %v; want %v", tc.prev, tc.next, got, tc.want)
			}
		})
	}
}

// TestInteriorAngle_NonReflex confirms the result never exceeds 180°
// regardless of vertex order.
func TestInteriorAngle_NonReflex(t *testing.T) {
	// The raw signed angle here is 270°; the fold must report 90°.
	got := geom.InteriorAngle(geom.Point{X: 1}, geom.Point{}, geom.Point{Y: -1})
	assert.InDelta(t, 90.0, got, angleTol)
}
