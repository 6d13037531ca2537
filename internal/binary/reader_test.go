package binary

import (
	"bytes"
	"testing"
)

func TestReaderReadUint32(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00, 0x2A, 0x89, 0x50, 0x4E}, DefaultConfig())

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}

	if _, err := r.ReadUint32(); err != ErrShortRead {
		t.Errorf("expected ErrShortRead, got %v", err)
	}
	if r.Remaining() != 3 {
		t.Errorf("expected 3 remaining, got %d", r.Remaining())
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte("IHDRtEXt")
	r := NewReader(data, DefaultConfig())

	got, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(got, []byte("IHDR")) {
		t.Errorf("expected IHDR, got %q", got)
	}

	// Returned slice must not alias the source.
	got[0] = 'X'
	if data[0] != 'I' {
		t.Error("ReadBytes result aliases the reader buffer")
	}

	empty, err := r.ReadBytes(0)
	if err != nil || len(empty) != 0 {
		t.Errorf("ReadBytes(0) = %v, %v", empty, err)
	}

	if _, err := r.ReadBytes(5); err != ErrShortRead {
		t.Errorf("expected ErrShortRead, got %v", err)
	}
	if _, err := r.ReadBytes(-1); err != ErrShortRead {
		t.Errorf("expected ErrShortRead for negative length, got %v", err)
	}
}

func TestReaderReadArray4(t *testing.T) {
	r := NewReader([]byte("RuSt!"), DefaultConfig())

	arr, err := r.ReadArray4()
	if err != nil {
		t.Fatalf("ReadArray4 failed: %v", err)
	}
	if arr != [4]byte{'R', 'u', 'S', 't'} {
		t.Errorf("unexpected array %v", arr)
	}
	if _, err := r.ReadArray4(); err != ErrShortRead {
		t.Errorf("expected ErrShortRead, got %v", err)
	}
}

func TestReaderAt(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	r := NewReader(data, DefaultConfig())

	r2 := r.At(6)
	if r2.Pos() != 6 || r2.Remaining() != 2 {
		t.Errorf("At(6): pos=%d remaining=%d", r2.Pos(), r2.Remaining())
	}
	if r.Pos() != 0 {
		t.Error("At must not move the original reader")
	}

	if r.At(100).Remaining() != 0 {
		t.Error("At past the end should clamp to the end")
	}
	if r.At(-3).Pos() != 0 {
		t.Error("At before the start should clamp to 0")
	}
}
