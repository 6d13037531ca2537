package binary

import (
	"encoding/binary"
)

// Writer appends binary data to a growable in-memory buffer.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriterSize creates a writer whose buffer is preallocated to hold size bytes.
func NewWriterSize(cfg Config, size int) *Writer {
	return &Writer{
		buf:   make([]byte, 0, size),
		order: cfg.ByteOrder,
	}
}

// Bytes returns the written bytes. The slice aliases the writer's buffer
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends the given bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var tmp [4]byte
	w.order.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}
