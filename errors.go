package dynbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every index-out-of-range failure.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidBitString is matched by every malformed bit string failure.
	ErrInvalidBitString = errors.New("invalid bit string")
)

// ErrIndexOutOfRange indicates an access at or beyond the vector's length.
//
// It matches ErrOutOfRange via errors.Is.
type ErrIndexOutOfRange struct {
	Index  uint
	Length uint
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrInvalidDigit indicates a character other than '0' or '1' in a bit string.
//
// It matches ErrInvalidBitString via errors.Is.
type ErrInvalidDigit struct {
	Pos  int
	Char byte
}

func (e *ErrInvalidDigit) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d", e.Char, e.Pos)
}

func (e *ErrInvalidDigit) Unwrap() error { return ErrInvalidBitString }
