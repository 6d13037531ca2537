package png

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/robert-malhotra/go-pngstash/internal/binary"
)

// Framing sizes of a serialized chunk.
const (
	chunkHeaderSize  = 8 // length + type
	chunkTrailerSize = 4 // crc
	chunkOverhead    = chunkHeaderSize + chunkTrailerSize
)

// Chunk is a single PNG chunk: a type, its payload and the CRC over both.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk builds a chunk and computes its CRC. The chunk takes ownership
// of data.
func NewChunk(typ ChunkType, data []byte) Chunk {
	tb := typ.Bytes()
	return Chunk{
		length: uint32(len(data)),
		typ:    typ,
		data:   data,
		crc:    binary.PNGChecksum(tb[:], data),
	}
}

// ParseChunk parses one chunk from the start of b. Bytes after the chunk are
// ignored; use Size to find where the next chunk begins.
func ParseChunk(b []byte) (Chunk, error) {
	return readChunk(binary.NewReader(b, binary.DefaultConfig()))
}

// readChunk parses one chunk at the reader's position. On error the reader
// position is unspecified.
func readChunk(r *binary.Reader) (Chunk, error) {
	avail := r.Remaining()
	if avail < chunkHeaderSize {
		return Chunk{}, newError(KindIncompleteSlice, "", "need %d header bytes, have %d", chunkHeaderSize, avail)
	}

	length, err := r.ReadUint32()
	if err != nil {
		return Chunk{}, newError(KindIncompleteSlice, "", "%v", err)
	}
	raw, err := r.ReadArray4()
	if err != nil {
		return Chunk{}, newError(KindIncompleteSlice, "", "%v", err)
	}
	typ, err := ChunkTypeFromBytes(raw)
	if err != nil {
		return Chunk{}, err
	}

	// uint64 so a length near 2^32 cannot wrap on 32-bit platforms.
	need := uint64(chunkOverhead) + uint64(length)
	if uint64(avail) < need {
		return Chunk{}, newError(KindIncompleteSlice, typ.String(), "declared length %d needs %d bytes, have %d", length, need, avail)
	}

	data, err := r.ReadBytes(int(length))
	if err != nil {
		return Chunk{}, newError(KindIncompleteSlice, typ.String(), "%v", err)
	}
	crc, err := r.ReadUint32()
	if err != nil {
		return Chunk{}, newError(KindIncompleteSlice, typ.String(), "%v", err)
	}

	if !binary.VerifyPNGChecksum(crc, raw[:], data) {
		return Chunk{}, newError(KindIncorrectCRC, typ.String(), "stored 0x%08x, computed 0x%08x",
			crc, binary.PNGChecksum(raw[:], data))
	}

	return Chunk{
		length: length,
		typ:    typ,
		data:   data,
		crc:    crc,
	}, nil
}

// Length returns the payload length in bytes.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk type.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the payload. The slice aliases the chunk's storage.
func (c Chunk) Data() []byte {
	return c.data
}

// CRC returns the CRC over type and payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// Size returns the number of bytes the chunk occupies when serialized.
func (c Chunk) Size() int {
	return chunkOverhead + int(c.length)
}

// DataString decodes the payload as UTF-8 text.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", newError(KindTextDecode, c.typ.String(), "")
	}
	return string(c.data), nil
}

// Bytes serializes the chunk: length, type, data, crc.
func (c Chunk) Bytes() []byte {
	w := binary.NewWriterSize(binary.DefaultConfig(), c.Size())
	c.writeTo(w)
	return w.Bytes()
}

func (c Chunk) writeTo(w *binary.Writer) {
	tb := c.typ.Bytes()
	w.WriteUint32(c.length)
	w.WriteBytes(tb[:])
	w.WriteBytes(c.data)
	w.WriteUint32(c.crc)
}

// Equal reports whether c and o have identical fields.
func (c Chunk) Equal(o Chunk) bool {
	return c.length == o.length &&
		c.typ == o.typ &&
		c.crc == o.crc &&
		bytes.Equal(c.data, o.data)
}

func (c Chunk) String() string {
	if text, err := c.DataString(); err == nil {
		return fmt.Sprintf("Chunk Type: %s; Data: %s", c.typ, text)
	}
	return fmt.Sprintf("Chunk Type: %s; Data: <%d bytes>", c.typ, c.length)
}
