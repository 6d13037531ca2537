package png

import (
	"fmt"
)

// bit 5 of each type byte carries one property.
const propertyBit = 0x20

// ChunkType is a validated 4-byte chunk type code. The zero value is not a
// valid chunk type; use ChunkTypeFromBytes or ParseChunkType.
type ChunkType struct {
	bytes [4]byte
}

// ChunkTypeFromBytes builds a ChunkType from raw bytes. Every byte must be an
// ASCII letter. The reserved bit is not checked here; see IsValid.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isLetter(c) {
			return ChunkType{}, newError(KindASCII, "", "byte %d is 0x%02x", i, c)
		}
	}
	return ChunkType{bytes: b}, nil
}

// ParseChunkType builds a ChunkType from a 4-character string.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, newError(KindInvalidLength, "", "got %d bytes", len(s))
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

// MustParseChunkType is like ParseChunkType but panics on error. It is
// intended for package-level variables with literal codes.
func MustParseChunkType(s string) ChunkType {
	t, err := ParseChunkType(s)
	if err != nil {
		panic(fmt.Sprintf("png: MustParseChunkType(%q): %v", s, err))
	}
	return t
}

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.bytes
}

func (t ChunkType) String() string {
	return string(t.bytes[:])
}

// IsCritical reports whether the ancillary bit (byte 0) is clear.
func (t ChunkType) IsCritical() bool {
	return t.bytes[0]&propertyBit == 0
}

// IsPublic reports whether the private bit (byte 1) is clear.
func (t ChunkType) IsPublic() bool {
	return t.bytes[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (byte 2) is clear, as
// the format requires.
func (t ChunkType) IsReservedBitValid() bool {
	return t.bytes[2]&propertyBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit (byte 3) is set.
func (t ChunkType) IsSafeToCopy() bool {
	return t.bytes[3]&propertyBit != 0
}

// IsValid reports whether all bytes are ASCII letters and the reserved bit
// is clear.
func (t ChunkType) IsValid() bool {
	for _, c := range t.bytes {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// matches reports whether the type bytes equal code exactly.
func (t ChunkType) matches(code string) bool {
	return len(code) == 4 && string(t.bytes[:]) == code
}

// MarshalText implements encoding.TextMarshaler.
func (t ChunkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseChunkType
// validation.
func (t *ChunkType) UnmarshalText(text []byte) error {
	parsed, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
