// Package endian provides the byte order used on the wire and the fixed-width
// integer helpers the record encoders are built from.
//
// All multi-byte fields are written big-endian (network order) regardless of
// the encoding host, so a little-endian sensor and a big-endian gateway agree
// on every byte:
//
//	engine := endian.Engine()
//	engine.PutUint32(buf, uint32(latitude))
//
// Fields narrower than their Go type are produced by the Wrap helpers, which
// keep only the low-order bits. Values outside the field range wrap instead of
// failing; this is part of the wire format, not an error.
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

const (
	// Mask16 keeps the low 16 bits of a value.
	Mask16 = 0xFFFF
	// Mask24 keeps the low 24 bits of a value.
	Mask24 = 0xFFFFFF
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine returns the wire byte order engine. It is always big-endian.
func Engine() EndianEngine {
	return binary.BigEndian
}

// Wrap24 returns the low 24 bits of v as an unsigned value in [0, 0xFFFFFF].
//
// Signed inputs in [-0x800000, 0x7FFFFF] survive the round trip as 24-bit
// two's complement. Anything wider wraps, e.g. 0x01000000 becomes 0.
func Wrap24(v int32) uint32 {
	return uint32(v) & Mask24
}

// Wrap16 returns the low 16 bits of v.
//
// Signed inputs in [-0x8000, 0x7FFF] and unsigned inputs in [0, 0xFFFF] are
// preserved. Anything wider wraps.
func Wrap16(v int64) uint16 {
	return uint16(v & Mask16)
}

// PutUint24 writes the low 24 bits of v into b[0:3], high byte first.
// Panics if len(b) < 3.
func PutUint24(b []byte, v uint32) {
	_ = b[2] // bounds check hint to compiler
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// AppendUint24 appends the low 24 bits of v to b, high byte first.
func AppendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: a big-endian host stores 0x01 at the lowest address.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host order already matches the wire order.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}
