package services

import (
	"math"

	"clubsphere_backend/pkg/apperrors"
)

// MinorUnits converts a major-unit fee to integer minor units (cents).
// Fees that do not land on an exact cent are rejected rather than floored,
// so the amount charged always equals the amount advertised.
func MinorUnits(fee float64) (int64, error) {
	cents := fee * 100
	rounded := math.Round(cents)
	if math.Abs(cents-rounded) > 1e-6 {
		return 0, apperrors.ErrFractionalFee
	}
	return int64(rounded), nil
}

// MajorUnits converts provider minor units back to a major-unit amount.
func MajorUnits(minor int64) float64 {
	return float64(minor) / 100
}
