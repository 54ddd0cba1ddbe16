package geom

import "math"

// MicrometersPerMM is the scale between user-facing millimeters and the
// solver's exact integer micrometer domain.
const MicrometersPerMM = 1000

// MMToUM converts millimeters to integer micrometers, rounding to the
// nearest micrometer. For any millimeter value aligned to micrometer
// granularity the conversion is exact and UMToMM inverts it.
func MMToUM(mm float64) int64 {
	return int64(math.Round(mm * MicrometersPerMM))
}

// UMToMM converts integer micrometers back to millimeters.
func UMToMM(um int64) float64 {
	return float64(um) / MicrometersPerMM
}
