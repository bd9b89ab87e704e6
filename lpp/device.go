package lpp

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/internal/hash"
)

// DeviceID is an opaque 4-byte identifier used for point-to-point addressing.
type DeviceID [4]byte

// DeviceIDFromBytes copies exactly four bytes into a DeviceID.
func DeviceIDFromBytes(b []byte) (DeviceID, error) {
	var id DeviceID
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidDeviceID, len(b), len(id))
	}
	copy(id[:], b)

	return id, nil
}

// DeviceIDFromUint32 lays v out high byte first.
func DeviceIDFromUint32(v uint32) DeviceID {
	var id DeviceID
	binary.BigEndian.PutUint32(id[:], v)

	return id
}

// DeviceIDFromName derives a stable id from a human readable device name,
// so nodes configured by name agree on their P2P address.
func DeviceIDFromName(name string) (DeviceID, error) {
	if name == "" {
		return DeviceID{}, fmt.Errorf("%w: empty name", errs.ErrInvalidDeviceID)
	}

	return DeviceIDFromUint32(hash.DeviceID(name)), nil
}

// ParseDeviceID parses 8 hex digits, with an optional 0x prefix.
func ParseDeviceID(s string) (DeviceID, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 8 {
		return DeviceID{}, fmt.Errorf("%w: %q is not 8 hex digits", errs.ErrInvalidDeviceID, s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return DeviceID{}, fmt.Errorf("%w: %w", errs.ErrInvalidDeviceID, err)
	}

	return DeviceIDFromBytes(b)
}

// Uint32 returns the id as a big-endian integer.
func (id DeviceID) Uint32() uint32 {
	return binary.BigEndian.Uint32(id[:])
}

func (id DeviceID) String() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}
