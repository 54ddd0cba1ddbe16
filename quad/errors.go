// Package quad: sentinel error set plus detail-carrying error types.
// Every failure mode of Solve maps to exactly one sentinel below, and
// tests match them via errors.Is. Failures that carry diagnostics
// (counts, sums, deviations) are struct types whose Unwrap returns the
// matching sentinel, so errors.As recovers the payload.
// No function in this package panics on user input.

package quad

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientConstraints is returned when fewer than the minimum
	// required sides/angles are given, or a 3-side case lacks an
	// adjacent angle pair.
	ErrInsufficientConstraints = errors.New("quad: insufficient constraints")

	// ErrAngleSumInvalid is returned when four given interior angles do
	// not sum to 360° within 0.5°.
	ErrAngleSumInvalid = errors.New("quad: interior angle sum invalid")

	// ErrInvalidDerivedAngle is returned when the single angle completed
	// from the 360° sum law falls outside (0°, 360°).
	ErrInvalidDerivedAngle = errors.New("quad: derived angle out of range")

	// ErrUnsupportedCombination is returned when the knowns pass the
	// count check but match no implemented construction pattern.
	ErrUnsupportedCombination = errors.New(
		"quad: unsupported combination of known values (need 4 sides + at least 1 angle, or 3 sides + 2 adjacent angles)")

	// ErrGeometricConflict is returned when the two circles (or ray and
	// circle) that must fix the free vertex do not intersect: the given
	// side lengths are mutually infeasible.
	ErrGeometricConflict = errors.New("quad: side lengths are mutually infeasible")

	// ErrClosureMismatch is returned when a side derived from the final
	// construction disagrees with its user-given value beyond tolerance.
	ErrClosureMismatch = errors.New("quad: closure mismatch")

	// ErrNotSolved is returned by Quadrilateral accessors before a
	// successful Solve.
	ErrNotSolved = errors.New("quad: shape not solved")

	// ErrRatioRange is returned by PointOnSide for a ratio outside [0,1].
	ErrRatioRange = errors.New("quad: ratio outside [0,1]")
)

// InsufficientConstraintsError reports how many sides and angles were
// actually given. Unwraps to ErrInsufficientConstraints.
type InsufficientConstraintsError struct {
	SidesGiven  int
	AnglesGiven int
}

func (e *InsufficientConstraintsError) Error() string {
	return fmt.Sprintf(
		"quad: insufficient constraints: %d sides and %d angles given (need 4 sides + at least 1 angle, or 3 sides + 2 adjacent angles)",
		e.SidesGiven, e.AnglesGiven)
}

func (e *InsufficientConstraintsError) Unwrap() error { return ErrInsufficientConstraints }

// AngleSumError reports the offending sum of four given angles.
// Unwraps to ErrAngleSumInvalid.
type AngleSumError struct {
	Sum float64
}

func (e *AngleSumError) Error() string {
	return fmt.Sprintf("quad: interior angles sum to %.3f°, want 360° ± %.1f°", e.Sum, angleSumToleranceDeg)
}

func (e *AngleSumError) Unwrap() error { return ErrAngleSumInvalid }

// DerivedAngleError reports a completed angle outside the open
// interval (0°, 360°). Unwraps to ErrInvalidDerivedAngle.
type DerivedAngleError struct {
	Value float64
}

func (e *DerivedAngleError) Error() string {
	return fmt.Sprintf("quad: derived interior angle %.3f° is outside (0°, 360°)", e.Value)
}

func (e *DerivedAngleError) Unwrap() error { return ErrInvalidDerivedAngle }

// ClosureMismatchError reports the side whose derived length disagrees
// with its given value, both lengths in micrometers, and the deviation
// as a percentage of the given value. Unwraps to ErrClosureMismatch.
type ClosureMismatchError struct {
	Side         Side
	ComputedUM   int64
	ExpectedUM   int64
	DeviationPct float64
}

func (e *ClosureMismatchError) Error() string {
	return fmt.Sprintf("quad: side %s closes at %d µm but %d µm was given (off by %.2f%%)",
		e.Side, e.ComputedUM, e.ExpectedUM, e.DeviationPct)
}

func (e *ClosureMismatchError) Unwrap() error { return ErrClosureMismatch }
