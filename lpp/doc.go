// Package lpp encodes sensor readings into a compact, fixed-capacity Cayenne
// LPP style buffer for low-bandwidth radio links.
//
// Each reading becomes one self-describing record:
//
//	[channel:1][type tag:1][payload:fixed width]
//
// The payload width is a function of the type tag alone (see package format),
// so a receiver holding the same tag table can decode a buffer without knowing
// the sender's types. Multi-byte fields are always big-endian.
//
// # Record Kinds
//
//   - AddGNSS4: lat/lon in 1e-4 degree, altitude in 1e-2 m, 3 bytes each (tag 0x88)
//   - AddGNSS6: lat/lon in 1e-6 degree (4 bytes each), altitude in 1e-2 m (3 bytes) (tag 0x89)
//   - AddGNSSH: lat/lon in 1e-6 degree, altitude in m, accuracy, battery, on a reserved channel (tag 0x8B)
//   - AddVOCIndex: 16-bit VOC index, unscaled (tag 0x8A)
//   - AddDeviceID: 4 opaque bytes for P2P addressing (tag 0xFF)
//
// # Encoding Workflow
//
//	enc, err := lpp.NewEncoder(51)
//	if err != nil {
//	    return err
//	}
//
//	lat, _ := lpp.ScaleDegrees6(35.689487)
//	lon, _ := lpp.ScaleDegrees6(139.691706)
//	if _, err := enc.AddGNSS6(1, lat, lon, 4012); err != nil {
//	    // errs.ErrBufferOverflow: flush enc.Bytes() and retry, or drop the reading
//	}
//	enc.AddVOCIndex(2, 112)
//
//	radio.Send(enc.Bytes())
//	enc.Reset()
//
// # Capacity and Atomicity
//
// The buffer capacity is fixed at construction and never grows. Every Add
// method first checks that the full record fits; if it does not, it returns
// 0 and errs.ErrBufferOverflow and leaves the buffer untouched. A buffer
// therefore never holds a partial record. On success the new buffer length
// is returned, which is always at least one full record.
//
// Fields narrower than the scaled integer keep only its low-order bytes:
// values beyond a 3-byte field wrap silently. This is the precision ceiling
// of the wire format, not a runtime error.
//
// # Thread Safety
//
// Encoder is NOT thread-safe. Use one encoder per goroutine or guard it
// externally.
package lpp
