// Package png reads and writes the chunk structure of PNG files.
//
// It exposes the chunk sequence of a PNG byte stream so chunks can be
// appended, looked up and removed by type, then serializes the result back to
// an exact PNG byte stream. Pixel data is never decoded.
package png

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-pngstash/internal/binary"
)

// Signature is the fixed 8-byte header of every PNG file:
// 0x89 P N G \r \n 0x1a \n
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is an ordered sequence of chunks. Chunk order is preserved by every
// operation.
type PNG struct {
	chunks []Chunk
}

// FromChunks wraps chunks in a PNG without further validation. Ordering rules
// of the PNG standard (IHDR first, IEND last) are not enforced.
func FromChunks(chunks []Chunk) *PNG {
	return &PNG{chunks: chunks}
}

// Parse parses a complete PNG byte stream. Any chunk error aborts the parse;
// trailing bytes that do not form a complete chunk are an error.
func Parse(b []byte, opts ...ParseOption) (*PNG, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(o)
	}

	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		n := len(b)
		if n > len(Signature) {
			n = len(Signature)
		}
		return nil, newError(KindSignatureMismatch, "", "got % x", b[:n])
	}

	r := binary.NewReader(b, binary.DefaultConfig()).At(len(Signature))
	p := &PNG{}
	for r.Remaining() > 0 {
		offset := r.Pos()
		c, err := readChunk(r)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d at offset %d", len(p.chunks), offset)
		}
		if o.strictTypes && !c.typ.IsReservedBitValid() {
			return nil, errors.Wrapf(newError(KindReservedBit, c.typ.String(), ""),
				"chunk %d at offset %d", len(p.chunks), offset)
		}
		p.chunks = append(p.chunks, c)
	}
	return p, nil
}

// Header returns the PNG signature.
func (p *PNG) Header() [8]byte {
	return Signature
}

// Chunks returns the chunk sequence. The slice aliases the PNG's storage.
func (p *PNG) Chunks() []Chunk {
	return p.chunks
}

// Len returns the number of chunks.
func (p *PNG) Len() int {
	return len(p.chunks)
}

// AppendChunk adds c after the last chunk. No deduplication or reordering is
// done.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveChunk removes and returns the first chunk whose type equals code.
func (p *PNG) RemoveChunk(code string) (Chunk, error) {
	for i := range p.chunks {
		if p.chunks[i].typ.matches(code) {
			c := p.chunks[i]
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, newError(KindChunkNotPresent, code, "")
}

// ChunkByType returns the first chunk whose type equals code, or nil. The
// returned pointer refers to the PNG's storage and is invalidated by
// AppendChunk and RemoveChunk.
func (p *PNG) ChunkByType(code string) *Chunk {
	for i := range p.chunks {
		if p.chunks[i].typ.matches(code) {
			return &p.chunks[i]
		}
	}
	return nil
}

// Size returns the serialized length in bytes.
func (p *PNG) Size() int {
	n := len(Signature)
	for i := range p.chunks {
		n += p.chunks[i].Size()
	}
	return n
}

// Bytes serializes the signature followed by every chunk in order.
func (p *PNG) Bytes() []byte {
	w := binary.NewWriterSize(binary.DefaultConfig(), p.Size())
	w.WriteBytes(Signature[:])
	for i := range p.chunks {
		p.chunks[i].writeTo(w)
	}
	return w.Bytes()
}

func (p *PNG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PNG (%d chunks)\n", len(p.chunks))
	for i := range p.chunks {
		fmt.Fprintf(&sb, "  %s\n", p.chunks[i])
	}
	return sb.String()
}
