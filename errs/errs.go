// Package errs defines the errors returned by binstd packages.
//
// Errors fall into two structural kinds:
//   - Size/range violations (*RangeError): a length, count or ordinal is
//     negative or exceeds the applicable ceiling. errors.Is(err, ErrOutOfRange)
//     reports true for every RangeError.
//   - Identity mismatches (*IdentityError): a singleton codec was asked to
//     encode a value other than its fixed instance.
//
// The remaining sentinels describe stream-level failures. Callers wrap them with
// context using fmt.Errorf("%w: ...") and match them with errors.Is.
package errs

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOutOfRange is the sentinel behind every *RangeError.
	ErrOutOfRange = errors.New("size out of range")

	// ErrIdentityMismatch is the sentinel behind every *IdentityError.
	ErrIdentityMismatch = errors.New("value is not the codec instance")

	// ErrUnexpectedEOF is returned when the input ends in the middle of a value.
	ErrUnexpectedEOF = fmt.Errorf("binstd: %w", io.ErrUnexpectedEOF)

	// ErrVarintOverflow is returned when a varint is not terminated within its width.
	ErrVarintOverflow = errors.New("varint too big")

	ErrInvalidBool    = errors.New("invalid boolean value")
	ErrInvalidUTF8    = errors.New("invalid UTF-8 string")
	ErrUnknownVariant = errors.New("value is not a known enum variant")
	ErrNilValue       = errors.New("nil value")

	// ErrBitOverflow is returned when a bit writer runs past its capacity.
	ErrBitOverflow = errors.New("bit capacity exceeded")

	// ErrTrailingBytes is returned when a payload is not fully consumed by its codec.
	ErrTrailingBytes = errors.New("trailing bytes after value")

	ErrChecksumMismatch       = errors.New("checksum mismatch")
	ErrInvalidMagic           = errors.New("invalid frame magic number")
	ErrInvalidFrameFlags      = errors.New("invalid frame flags")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrUnsupportedChecksum    = errors.New("unsupported checksum type")
)

// RangeError reports a length, size or ordinal outside its allowed bounds.
//
// When Min equals Max the bound is an exact expected value (fixed-length
// containers); otherwise Value must lie in Min..Max inclusive.
type RangeError struct {
	What  string // what was measured, e.g. "array length", "enum ordinal"
	Min   int64
	Max   int64
	Value int64
}

// NewRangeError returns a RangeError for value outside min..max.
func NewRangeError(what string, minVal, maxVal, value int64) *RangeError {
	return &RangeError{What: what, Min: minVal, Max: maxVal, Value: value}
}

// NewMismatchError returns a RangeError for a value that must equal expected.
func NewMismatchError(what string, expected, actual int64) *RangeError {
	return &RangeError{What: what, Min: expected, Max: expected, Value: actual}
}

func (e *RangeError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s %d != %d", e.What, e.Value, e.Min)
	}

	return fmt.Sprintf("%s %d not in %d..%d", e.What, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IdentityError reports a value that is not the fixed instance of a singleton codec.
type IdentityError struct {
	Value any
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%v: %v", ErrIdentityMismatch, e.Value)
}

func (e *IdentityError) Unwrap() error {
	return ErrIdentityMismatch
}

// CheckRange returns a *RangeError when value is negative or greater than maxVal.
func CheckRange(what string, value, maxVal int64) error {
	if value < 0 || value > maxVal {
		return NewRangeError(what, 0, maxVal, value)
	}

	return nil
}
