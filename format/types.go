// Package format defines the record vocabulary shared by encoders and decoders:
// value kinds, their one-byte type tags and their fixed payload widths.
//
// Every record on the wire is laid out as
//
//	[channel:1][type tag:1][payload:PayloadSize]
//
// and the payload width is determined solely by the type tag. A receiver that
// holds the same table can walk a buffer record by record without knowing the
// sender's types.
package format

type (
	// Kind identifies a value kind that can be appended to a buffer.
	Kind uint8

	// TypeTag is the second byte of every record.
	TypeTag uint8
)

const (
	KindGNSS4    Kind = 0x1 // KindGNSS4 is a GNSS fix with 1e-4 degree lat/lon and 1e-2 m altitude.
	KindGNSS6    Kind = 0x2 // KindGNSS6 is a GNSS fix with 1e-6 degree lat/lon and 1e-2 m altitude.
	KindGNSSH    Kind = 0x3 // KindGNSSH is a GNSS fix with accuracy and battery level on a reserved channel.
	KindVOC      Kind = 0x4 // KindVOC is a volatile organic compound index.
	KindDeviceID Kind = 0x5 // KindDeviceID is a 4-byte device id used for P2P addressing.
)

const (
	TagGNSS4    TypeTag = 0x88 // 136, Cayenne LPP GPS location
	TagGNSS6    TypeTag = 0x89 // 137
	TagVOC      TypeTag = 0x8A // 138
	TagGNSSH    TypeTag = 0x8B // 139
	TagDeviceID TypeTag = 0xFF // 255
)

const (
	// HeaderSize is the channel byte plus the type tag byte.
	HeaderSize = 2

	// ChannelGNSSH is the channel reserved for KindGNSSH records.
	ChannelGNSSH uint8 = 0x01

	// ChannelDeviceID is the channel conventionally used for device id records.
	ChannelDeviceID uint8 = 0x00
)

// Layout describes how one value kind is laid out on the wire.
type Layout struct {
	Kind        Kind
	Tag         TypeTag
	PayloadSize int
}

// RecordSize returns the total number of bytes a record of this layout occupies.
func (l Layout) RecordSize() int {
	return HeaderSize + l.PayloadSize
}

// layouts is indexed by Kind. Index 0 is unused.
var layouts = [...]Layout{
	KindGNSS4:    {Kind: KindGNSS4, Tag: TagGNSS4, PayloadSize: 9},
	KindGNSS6:    {Kind: KindGNSS6, Tag: TagGNSS6, PayloadSize: 11},
	KindGNSSH:    {Kind: KindGNSSH, Tag: TagGNSSH, PayloadSize: 14},
	KindVOC:      {Kind: KindVOC, Tag: TagVOC, PayloadSize: 2},
	KindDeviceID: {Kind: KindDeviceID, Tag: TagDeviceID, PayloadSize: 4},
}

// LayoutOf returns the wire layout of the given kind.
//
// Returns:
//   - Layout: tag and payload width of the kind
//   - bool: false if the kind is unknown
func LayoutOf(k Kind) (Layout, bool) {
	if k == 0 || int(k) >= len(layouts) {
		return Layout{}, false
	}

	return layouts[k], true
}

// KindOf returns the value kind identified by a type tag.
func KindOf(tag TypeTag) (Kind, bool) {
	for _, l := range layouts[1:] {
		if l.Tag == tag {
			return l.Kind, true
		}
	}

	return 0, false
}

// RecordSize returns the full record size (header and payload) of the given kind,
// or 0 if the kind is unknown.
func RecordSize(k Kind) int {
	l, ok := LayoutOf(k)
	if !ok {
		return 0
	}

	return l.RecordSize()
}

// Kinds returns all known value kinds in ascending order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(layouts)-1)
	for _, l := range layouts[1:] {
		kinds = append(kinds, l.Kind)
	}

	return kinds
}

func (k Kind) String() string {
	switch k {
	case KindGNSS4:
		return "GNSS4"
	case KindGNSS6:
		return "GNSS6"
	case KindGNSSH:
		return "GNSSH"
	case KindVOC:
		return "VOC"
	case KindDeviceID:
		return "DeviceID"
	default:
		return "Unknown"
	}
}

func (t TypeTag) String() string {
	if k, ok := KindOf(t); ok {
		return k.String()
	}

	return "Unknown"
}
