package lpp

import (
	"fmt"
	"io"

	"github.com/arloliu/wiscayenne/endian"
	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/format"
	"github.com/arloliu/wiscayenne/internal/buffer"
	"github.com/arloliu/wiscayenne/internal/options"
)

// MaxCapacity is the largest buffer an encoder can own. LPP frames are sized
// by a single byte on the devices that produce them.
const MaxCapacity = 255

// Writer is the base byte-buffer capability the encoder is composed from.
//
// Implementations must treat Reserve as all-or-nothing: either the full n
// bytes are reserved at the cursor, or nothing changes and false is returned.
type Writer interface {
	// Reserve advances the cursor by n bytes and returns the covered window.
	Reserve(n int) ([]byte, bool)
	// Bytes returns everything written so far.
	Bytes() []byte
	// Len returns the cursor.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Remaining returns Cap() - Len().
	Remaining() int
	// Reset rewinds the cursor to zero.
	Reset()
}

var _ Writer = (*buffer.FixedBuffer)(nil)

// Encoder appends typed sensor records to a fixed-capacity buffer.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
type Encoder struct {
	w      Writer
	engine endian.EndianEngine
	count  int // records written since the last Reset
}

type encoderConfig struct {
	capacity int
	storage  []byte
}

// EncoderOption configures NewEncoder.
type EncoderOption = options.Option[*encoderConfig]

// WithBuffer makes the encoder write into caller-provided storage instead of
// allocating its own. cap(b) must be at least the requested capacity; only
// the first capacity bytes are used.
func WithBuffer(b []byte) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if cap(b) < c.capacity {
			return fmt.Errorf("%w: storage holds %d bytes, need %d", errs.ErrInvalidCapacity, cap(b), c.capacity)
		}
		c.storage = b[:0:c.capacity]

		return nil
	})
}

// NewEncoder creates an encoder owning a buffer of the given capacity.
//
// Parameters:
//   - capacity: fixed buffer size in bytes, 1..MaxCapacity
//   - opts: optional configuration (WithBuffer)
//
// Returns:
//   - *Encoder: empty encoder ready for Add calls
//   - error: errs.ErrInvalidCapacity if capacity is out of range
func NewEncoder(capacity int, opts ...EncoderOption) (*Encoder, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d not in 1..%d", errs.ErrInvalidCapacity, capacity, MaxCapacity)
	}

	cfg := &encoderConfig{capacity: capacity}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var fb *buffer.FixedBuffer
	if cfg.storage != nil {
		fb = buffer.WrapFixedBuffer(cfg.storage)
	} else {
		fb = buffer.NewFixedBuffer(capacity)
	}

	return NewEncoderWithWriter(fb), nil
}

// NewEncoderWithWriter composes an encoder on top of an existing Writer.
// The writer is used as is; it is not reset.
func NewEncoderWithWriter(w Writer) *Encoder {
	return &Encoder{
		w:      w,
		engine: endian.Engine(),
	}
}

// Bytes returns the encoded buffer, ready to hand to a transport.
//
// The returned slice is valid until the next Add or Reset call. The caller
// must not modify it.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

// Size returns the number of bytes written, which is also the cursor.
func (e *Encoder) Size() int {
	return e.w.Len()
}

// Cap returns the fixed buffer capacity.
func (e *Encoder) Cap() int {
	return e.w.Cap()
}

// Remaining returns the number of free bytes.
func (e *Encoder) Remaining() int {
	return e.w.Remaining()
}

// Count returns the number of records written since the last Reset.
func (e *Encoder) Count() int {
	return e.count
}

// Fits reports whether one more record of the given kind fits in the buffer.
func (e *Encoder) Fits(kind format.Kind) bool {
	size := format.RecordSize(kind)
	return size > 0 && size <= e.w.Remaining()
}

// Reset empties the buffer so it can be reused for the next frame.
func (e *Encoder) Reset() {
	e.w.Reset()
	e.count = 0
}

// WriteTo writes the encoded buffer to w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.w.Bytes())
	return int64(n), err
}

// record reserves a full record of the given kind, writes its header and
// returns the payload window. Nothing is written if the record does not fit.
func (e *Encoder) record(kind format.Kind, channel uint8) ([]byte, error) {
	layout, ok := format.LayoutOf(kind)
	if !ok {
		return nil, errs.ErrUnknownKind
	}

	rec, ok := e.w.Reserve(layout.RecordSize())
	if !ok {
		return nil, errs.ErrBufferOverflow
	}

	rec[0] = channel
	rec[1] = byte(layout.Tag)
	e.count++

	return rec[format.HeaderSize:], nil
}

// AddVOCIndex appends a VOC index record.
//
// The index is written as an unsigned 16-bit value without scaling; values
// above 0xFFFF keep their low 16 bits.
//
// Returns the new buffer length, or 0 and errs.ErrBufferOverflow.
func (e *Encoder) AddVOCIndex(channel uint8, vocIndex uint32) (int, error) {
	p, err := e.record(format.KindVOC, channel)
	if err != nil {
		return 0, err
	}

	e.engine.PutUint16(p, endian.Wrap16(int64(vocIndex)))

	return e.w.Len(), nil
}

// AddDeviceID appends a device id record. The 4 id bytes are copied verbatim.
//
// Returns the new buffer length, or 0 and errs.ErrBufferOverflow.
func (e *Encoder) AddDeviceID(channel uint8, id DeviceID) (int, error) {
	p, err := e.record(format.KindDeviceID, channel)
	if err != nil {
		return 0, err
	}

	copy(p, id[:])

	return e.w.Len(), nil
}
