package lpp

import (
	"fmt"
	"math"

	"github.com/arloliu/wiscayenne/errs"
)

// Scale factors from physical units to wire units.
const (
	Degrees4Factor    = 1e4 // 1e-4 degree per unit
	Degrees6Factor    = 1e6 // 1e-6 degree per unit
	CentimetersFactor = 1e2 // 1e-2 meter per unit
)

// ScaleDegrees4 converts decimal degrees to 1e-4 degree units, rounding half
// away from zero.
func ScaleDegrees4(deg float64) (int32, error) {
	return scaleInt32(deg, Degrees4Factor)
}

// ScaleDegrees6 converts decimal degrees to 1e-6 degree units, rounding half
// away from zero.
func ScaleDegrees6(deg float64) (int32, error) {
	return scaleInt32(deg, Degrees6Factor)
}

// ScaleCentimeters converts meters to 1e-2 meter units.
func ScaleCentimeters(meters float64) (int32, error) {
	return scaleInt32(meters, CentimetersFactor)
}

// ScaleMeters rounds meters to a whole-meter 16-bit value.
func ScaleMeters(meters float64) (int16, error) {
	if !isFinite(meters) {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidCoordinate, meters)
	}

	v := math.Round(meters)
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %v m exceeds 16 bits", errs.ErrInvalidCoordinate, meters)
	}

	return int16(v), nil
}

// scaleInt32 multiplies v by factor and rounds. The result must fit int32
// since float to int conversion of out-of-range values is not defined.
func scaleInt32(v, factor float64) (int32, error) {
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidCoordinate, v)
	}

	scaled := math.Round(v * factor)
	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v exceeds 32 bits after scaling", errs.ErrInvalidCoordinate, v)
	}

	return int32(scaled), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
