package png

import (
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	KindASCII Kind = iota + 1
	KindInvalidLength
	KindIncompleteSlice
	KindIncorrectCRC
	KindSignatureMismatch
	KindChunkNotPresent
	KindTextDecode
	KindReservedBit
)

var kindText = map[Kind]string{
	KindASCII:             "chunk type bytes must be ASCII a-z or A-Z",
	KindInvalidLength:     "chunk type must be exactly 4 bytes",
	KindIncompleteSlice:   "not enough chunk bytes",
	KindIncorrectCRC:      "CRC does not match chunk type and data",
	KindSignatureMismatch: "not a PNG file: signature mismatch",
	KindChunkNotPresent:   "chunk not present",
	KindTextDecode:        "chunk data is not valid UTF-8",
	KindReservedBit:       "chunk type reserved bit is set",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("png error kind %d", int(k))
}

// Error is the error type returned by this package. Callers branch on Kind,
// usually through errors.Is against one of the Err sentinels.
type Error struct {
	Kind Kind
	// Type is the chunk type involved, when known.
	Type string
	// Detail carries kind-specific context such as byte counts or CRC values.
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Type != "" {
		msg += fmt.Sprintf(" (type %q)", e.Type)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is a *Error of the same Kind. Context fields are
// ignored so the sentinels match any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrASCII             = &Error{Kind: KindASCII}
	ErrInvalidLength     = &Error{Kind: KindInvalidLength}
	ErrIncompleteSlice   = &Error{Kind: KindIncompleteSlice}
	ErrIncorrectCRC      = &Error{Kind: KindIncorrectCRC}
	ErrSignatureMismatch = &Error{Kind: KindSignatureMismatch}
	ErrChunkNotPresent   = &Error{Kind: KindChunkNotPresent}
	ErrTextDecode        = &Error{Kind: KindTextDecode}
	ErrReservedBit       = &Error{Kind: KindReservedBit}
)

func newError(kind Kind, typ string, format string, args ...interface{}) *Error {
	e := &Error{Kind: kind, Type: typ}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}
