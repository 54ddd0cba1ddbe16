package quad

import "math"

// closureToleranceUM returns the acceptance band for comparing a
// derived side against a given one: the larger of 1 µm and 0.1% of the
// given length, both in integer micrometers.
func closureToleranceUM(expectedUM int64) int64 {
	tol := int64(math.Round(float64(expectedUM) * closureRelTolerance))
	if tol < minToleranceUM {
		tol = minToleranceUM
	}

	return tol
}

// checkClosure compares a side length derived from the construction
// against its user-given value. Both are integer micrometers. This is
// the central correctness gate: two-angle strategies chain vertices
// independently from both baseline ends, so over- or under-constrained
// inputs surface here as a mismatch on the joining side.
func checkClosure(sd Side, computedUM, expectedUM int64) error {
	dev := computedUM - expectedUM
	if dev < 0 {
		dev = -dev
	}
	if dev <= closureToleranceUM(expectedUM) {
		return nil
	}

	return &ClosureMismatchError{
		Side:         sd,
		ComputedUM:   computedUM,
		ExpectedUM:   expectedUM,
		DeviationPct: float64(dev) / float64(expectedUM) * 100.0,
	}
}
