package buffer

import "io"

// FixedBuffer is a byte buffer with a capacity fixed at construction.
//
// Unlike a growable buffer it never reallocates: writes either fit in the
// remaining capacity or are rejected without touching the buffer.
type FixedBuffer struct {
	// B is the underlying byte slice. len(B) is the write cursor, cap(B) the capacity.
	B []byte
}

// NewFixedBuffer allocates a buffer holding at most capacity bytes.
func NewFixedBuffer(capacity int) *FixedBuffer {
	return &FixedBuffer{
		B: make([]byte, 0, capacity),
	}
}

// WrapFixedBuffer uses the storage of b as buffer, starting empty.
// The capacity is cap(b); the contents of b are overwritten by later writes.
func WrapFixedBuffer(b []byte) *FixedBuffer {
	return &FixedBuffer{
		B: b[:0:cap(b)],
	}
}

// Bytes returns the written part of the buffer.
func (fb *FixedBuffer) Bytes() []byte {
	return fb.B
}

// Reset empties the buffer, keeping its storage.
func (fb *FixedBuffer) Reset() {
	fb.B = fb.B[:0]
}

// Len returns the number of bytes written, i.e. the cursor.
func (fb *FixedBuffer) Len() int {
	return len(fb.B)
}

// Cap returns the fixed capacity of the buffer.
func (fb *FixedBuffer) Cap() int {
	return cap(fb.B)
}

// Remaining returns the number of bytes that can still be written.
func (fb *FixedBuffer) Remaining() int {
	return cap(fb.B) - len(fb.B)
}

// Reserve extends the buffer by n bytes and returns the newly covered window.
//
// If fewer than n bytes remain, Reserve returns nil and false and the buffer
// is unchanged. The window may contain stale bytes from before a Reset; the
// caller must overwrite all of it.
func (fb *FixedBuffer) Reserve(n int) ([]byte, bool) {
	if n < 0 || fb.Remaining() < n {
		return nil, false
	}

	start := len(fb.B)
	fb.B = fb.B[:start+n]

	return fb.B[start : start+n : start+n], true
}

// Write appends data if it fits entirely, otherwise it writes nothing and
// returns io.ErrShortBuffer.
func (fb *FixedBuffer) Write(data []byte) (int, error) {
	dst, ok := fb.Reserve(len(data))
	if !ok {
		return 0, io.ErrShortBuffer
	}

	return copy(dst, data), nil
}

// WriteTo writes the contents of the buffer to w.
func (fb *FixedBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(fb.B)
	return int64(n), err
}
