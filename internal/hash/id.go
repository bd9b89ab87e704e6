package hash

import "github.com/cespare/xxhash/v2"

// DeviceID derives a 32-bit device identifier from a device name.
// It is the low 32 bits of the name's xxHash64.
func DeviceID(name string) uint32 {
	return uint32(xxhash.Sum64String(name))
}

// Sum computes the xxHash64 of a finished payload, used to fingerprint frames.
func Sum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
