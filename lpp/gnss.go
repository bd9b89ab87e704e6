package lpp

import (
	"fmt"

	"github.com/arloliu/wiscayenne/endian"
	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/format"
)

// Precision selects the GNSS record kind used by AddFix.
type Precision uint8

const (
	// PrecisionStandard encodes lat/lon in 1e-4 degree (about 11 m), tag 0x88.
	PrecisionStandard Precision = iota
	// PrecisionHigh encodes lat/lon in 1e-6 degree (about 11 cm), tag 0x89.
	PrecisionHigh
)

// Kind returns the record kind written for this precision.
func (p Precision) Kind() (format.Kind, error) {
	switch p {
	case PrecisionStandard:
		return format.KindGNSS4, nil
	case PrecisionHigh:
		return format.KindGNSS6, nil
	default:
		return 0, errs.ErrUnknownPrecision
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionStandard:
		return "standard"
	case PrecisionHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GNSSFix is a position reading in physical units.
type GNSSFix struct {
	Latitude  float64 // decimal degrees, positive north
	Longitude float64 // decimal degrees, positive east
	Altitude  float64 // meters above mean sea level
	Accuracy  float64 // horizontal accuracy in meters, 0 if unknown
}

// Validate checks that the fix holds finite, in-range coordinates.
func (f GNSSFix) Validate() error {
	switch {
	case !isFinite(f.Latitude) || f.Latitude < -90 || f.Latitude > 90:
		return fmt.Errorf("%w: latitude %v", errs.ErrInvalidCoordinate, f.Latitude)
	case !isFinite(f.Longitude) || f.Longitude < -180 || f.Longitude > 180:
		return fmt.Errorf("%w: longitude %v", errs.ErrInvalidCoordinate, f.Longitude)
	case !isFinite(f.Altitude):
		return fmt.Errorf("%w: altitude %v", errs.ErrInvalidCoordinate, f.Altitude)
	case !isFinite(f.Accuracy) || f.Accuracy < 0:
		return fmt.Errorf("%w: accuracy %v", errs.ErrInvalidCoordinate, f.Accuracy)
	}

	return nil
}

// AddGNSS4 appends a standard precision GNSS record (tag 0x88).
//
// The caller scales the inputs: latitude and longitude in 1e-4 degree,
// altitude in 1e-2 m. Each field is written as 3 bytes big-endian; only the
// low 24 bits are kept.
//
// Parameters:
//   - channel: caller assigned channel, not checked for collisions
//   - latitude, longitude: 1e-4 degree units
//   - altitude: 1e-2 meter units
//
// Returns:
//   - int: new buffer length
//   - error: errs.ErrBufferOverflow if fewer than 11 bytes remain
func (e *Encoder) AddGNSS4(channel uint8, latitude, longitude, altitude int32) (int, error) {
	p, err := e.record(format.KindGNSS4, channel)
	if err != nil {
		return 0, err
	}

	endian.PutUint24(p[0:3], endian.Wrap24(latitude))
	endian.PutUint24(p[3:6], endian.Wrap24(longitude))
	endian.PutUint24(p[6:9], endian.Wrap24(altitude))

	return e.w.Len(), nil
}

// AddGNSS6 appends a high precision GNSS record (tag 0x89).
//
// Latitude and longitude are in 1e-6 degree and written as 4 bytes
// big-endian. Altitude is in 1e-2 m and written as 3 bytes; only its low
// 24 bits are kept.
//
// Returns the new buffer length, or 0 and errs.ErrBufferOverflow if fewer
// than 13 bytes remain.
func (e *Encoder) AddGNSS6(channel uint8, latitude, longitude, altitude int32) (int, error) {
	p, err := e.record(format.KindGNSS6, channel)
	if err != nil {
		return 0, err
	}

	e.engine.PutUint32(p[0:4], uint32(latitude))
	e.engine.PutUint32(p[4:8], uint32(longitude))
	endian.PutUint24(p[8:11], endian.Wrap24(altitude))

	return e.w.Len(), nil
}

// AddGNSSH appends a GNSS record with accuracy and battery level (tag 0x8B)
// on the reserved channel format.ChannelGNSSH.
//
// Latitude and longitude are in 1e-6 degree (4 bytes each); altitude is in
// whole meters, accuracy and battery are written unscaled (2 bytes each).
//
// Returns the new buffer length, or 0 and errs.ErrBufferOverflow if fewer
// than 16 bytes remain.
func (e *Encoder) AddGNSSH(latitude, longitude int32, altitude, accuracy, battery int16) (int, error) {
	p, err := e.record(format.KindGNSSH, format.ChannelGNSSH)
	if err != nil {
		return 0, err
	}

	e.engine.PutUint32(p[0:4], uint32(latitude))
	e.engine.PutUint32(p[4:8], uint32(longitude))
	e.engine.PutUint16(p[8:10], uint16(altitude))
	e.engine.PutUint16(p[10:12], uint16(accuracy))
	e.engine.PutUint16(p[12:14], uint16(battery))

	return e.w.Len(), nil
}

// AddFix scales a fix and appends it as a GNSS4 or GNSS6 record.
//
// Returns the new buffer length, or 0 and an error wrapping
// errs.ErrInvalidCoordinate, errs.ErrUnknownPrecision or
// errs.ErrBufferOverflow. Nothing is written on error.
func (e *Encoder) AddFix(channel uint8, fix GNSSFix, precision Precision) (int, error) {
	kind, err := precision.Kind()
	if err != nil {
		return 0, err
	}
	if err := fix.Validate(); err != nil {
		return 0, err
	}

	alt, err := ScaleCentimeters(fix.Altitude)
	if err != nil {
		return 0, err
	}

	scale := ScaleDegrees4
	if kind == format.KindGNSS6 {
		scale = ScaleDegrees6
	}

	// Validate bounded lat/lon, scaling cannot fail.
	lat, _ := scale(fix.Latitude)
	lon, _ := scale(fix.Longitude)

	if kind == format.KindGNSS6 {
		return e.AddGNSS6(channel, lat, lon, alt)
	}

	return e.AddGNSS4(channel, lat, lon, alt)
}

// AddTrackerFix scales a fix and appends it as a GNSSH record with the given
// battery level.
func (e *Encoder) AddTrackerFix(fix GNSSFix, battery int16) (int, error) {
	if err := fix.Validate(); err != nil {
		return 0, err
	}

	alt, err := ScaleMeters(fix.Altitude)
	if err != nil {
		return 0, err
	}

	acc, err := ScaleMeters(fix.Accuracy)
	if err != nil {
		return 0, err
	}

	lat, _ := ScaleDegrees6(fix.Latitude)
	lon, _ := ScaleDegrees6(fix.Longitude)

	return e.AddGNSSH(lat, lon, alt, acc, battery)
}
