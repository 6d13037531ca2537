package binary

import (
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned when fewer bytes remain than a read requires.
var ErrShortRead = errors.New("short read: not enough bytes remaining")

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the PNG configuration (big-endian).
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.BigEndian,
	}
}

// Reader provides sequential reads over an in-memory byte slice.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a binary reader over buf with the given configuration.
// The reader does not copy buf.
func NewReader(buf []byte, cfg Config) *Reader {
	return &Reader{
		buf:   buf,
		order: cfg.ByteOrder,
		pos:   0,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying slice but has independent position.
// Offsets outside the slice are clamped to its end.
func (r *Reader) At(offset int) *Reader {
	if offset < 0 {
		offset = 0
	}
	if offset > len(r.buf) {
		offset = len(r.buf)
	}
	return &Reader{
		buf:   r.buf,
		order: r.order,
		pos:   offset,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadBytes reads exactly n bytes from the current position. The returned
// slice is a copy and does not alias the reader's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrShortRead
	}
	buf := make([]byte, n)
	copy(buf, r.buf[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// ReadArray4 reads four bytes into a fixed-size array.
func (r *Reader) ReadArray4() ([4]byte, error) {
	var out [4]byte
	if r.Remaining() < 4 {
		return out, ErrShortRead
	}
	copy(out[:], r.buf[r.pos:r.pos+4])
	r.pos += 4
	return out, nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShortRead
	}
	v := r.order.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}
