// Package errs defines the sentinel errors returned by wiscayenne packages.
//
// Callers should match them with errors.Is, since call sites may wrap them
// with additional context.
package errs

import "errors"

// Encoder errors.
var (
	// ErrBufferOverflow is returned when the remaining capacity cannot hold a full record.
	// The buffer and cursor are left unchanged.
	ErrBufferOverflow = errors.New("lpp: buffer overflow")

	// ErrInvalidCapacity is returned when an encoder is created with a capacity
	// outside 1..MaxCapacity.
	ErrInvalidCapacity = errors.New("lpp: invalid buffer capacity")

	// ErrUnknownKind is returned when a value kind has no entry in the tag table.
	ErrUnknownKind = errors.New("lpp: unknown value kind")

	// ErrUnknownPrecision is returned for a GNSS precision that maps to no record kind.
	ErrUnknownPrecision = errors.New("lpp: unknown GNSS precision")

	// ErrFrameTooSmall is returned when a group of records cannot fit even an empty frame.
	ErrFrameTooSmall = errors.New("lpp: frame capacity too small for record group")
)

// Value errors.
var (
	// ErrInvalidCoordinate is returned when a GNSS coordinate is NaN, infinite or out of range.
	ErrInvalidCoordinate = errors.New("lpp: invalid coordinate")

	// ErrInvalidDeviceID is returned when a device id cannot be built from the given input.
	ErrInvalidDeviceID = errors.New("lpp: invalid device id")
)

// NMEA source errors.
var (
	// ErrNoFix is returned for a sentence that reports no valid position.
	ErrNoFix = errors.New("nmea: no position fix")

	// ErrUnsupportedSentence is returned for sentence types that carry no position.
	ErrUnsupportedSentence = errors.New("nmea: unsupported sentence type")
)
