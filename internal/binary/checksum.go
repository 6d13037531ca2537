package binary

import (
	"errors"
	"fmt"
	"hash/crc32"
)

// ErrUnsupportedAlgorithm is returned for CRC parameter sets that cannot be
// run on a reflected 32-bit table.
var ErrUnsupportedAlgorithm = errors.New("unsupported CRC algorithm")

// Algorithm is a CRC parameter set in the Rocksoft model.
type Algorithm struct {
	Name   string
	Width  uint8
	Poly   uint32 // normal (MSB-first) polynomial
	Init   uint32
	RefIn  bool
	RefOut bool
	XorOut uint32
	Check  uint32 // CRC of the ASCII bytes "123456789"
}

// CRC32ISOHDLC is the CRC used by PNG (and zlib).
var CRC32ISOHDLC = Algorithm{
	Name:   "CRC-32/ISO-HDLC",
	Width:  32,
	Poly:   0x04C11DB7,
	Init:   0xFFFFFFFF,
	RefIn:  true,
	RefOut: true,
	XorOut: 0xFFFFFFFF,
	Check:  0xCBF43926,
}

// checkInput is the standard catalogue input for Algorithm.Check.
var checkInput = []byte("123456789")

// CRC32 computes checksums for a fixed Algorithm. It holds no mutable state
// and is safe for concurrent use.
type CRC32 struct {
	alg   Algorithm
	table *crc32.Table
}

// NewCRC32 builds a checksummer for alg and verifies it against alg.Check.
// Only 32-bit reflected algorithms are supported.
func NewCRC32(alg Algorithm) (*CRC32, error) {
	if alg.Width != 32 || !alg.RefIn || !alg.RefOut {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg.Name)
	}
	c := &CRC32{
		alg:   alg,
		table: crc32.MakeTable(reflect32(alg.Poly)),
	}
	if got := c.Checksum(checkInput); got != alg.Check {
		return nil, fmt.Errorf("%w: %s check value 0x%08x, want 0x%08x",
			ErrUnsupportedAlgorithm, alg.Name, got, alg.Check)
	}
	return c, nil
}

// Checksum computes the CRC over the concatenation of parts.
func (c *CRC32) Checksum(parts ...[]byte) uint32 {
	// crc32.Update inverts the register on entry and exit, so the raw
	// register is seeded with ^Init and the result is re-inverted before
	// applying XorOut.
	crc := ^c.alg.Init
	for _, p := range parts {
		crc = crc32.Update(crc, c.table, p)
	}
	return ^crc ^ c.alg.XorOut
}

// Verify reports whether the CRC over parts equals expected.
func (c *CRC32) Verify(expected uint32, parts ...[]byte) bool {
	return c.Checksum(parts...) == expected
}

func reflect32(v uint32) uint32 {
	var r uint32
	for i := 0; i < 32; i++ {
		if v&(1<<i) != 0 {
			r |= 1 << (31 - i)
		}
	}
	return r
}

var pngCRC *CRC32

func init() {
	c, err := NewCRC32(CRC32ISOHDLC)
	if err != nil {
		panic(err)
	}
	pngCRC = c
}

// PNGChecksum computes the PNG chunk CRC (CRC-32/ISO-HDLC) over the
// concatenation of parts.
func PNGChecksum(parts ...[]byte) uint32 {
	return pngCRC.Checksum(parts...)
}

// VerifyPNGChecksum reports whether the PNG chunk CRC over parts equals expected.
func VerifyPNGChecksum(expected uint32, parts ...[]byte) bool {
	return pngCRC.Verify(expected, parts...)
}
