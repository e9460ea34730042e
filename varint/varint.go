// Package varint implements the unsigned LEB128 variable-length integer coding
// used for lengths, counts, ordinals and var32/var64 values on the wire.
//
// Each byte carries 7 payload bits, low-order group first. The most significant
// bit of a byte is the continuation flag: 1 means more bytes follow, 0 marks the
// last byte.
//
//	300 = 0b10_0101100 -> 0xAC 0x02
//
// Signed values are encoded through their two's-complement bit pattern, so a
// negative int32 always occupies MaxLen32 bytes and a negative int64 always
// occupies MaxLen64 bytes.
package varint

import (
	"fmt"

	"github.com/arloliu/binstd/errs"
)

const (
	// MaxLen32 is the maximum encoded length of a 32-bit varint.
	MaxLen32 = 5
	// MaxLen64 is the maximum encoded length of a 64-bit varint.
	MaxLen64 = 10

	payloadMask  = 0x7F
	continuation = 0x80

	// shift of the last byte a varint may occupy
	maxShift32 = 28
	maxShift64 = 63
)

// Append32 appends the varint encoding of v to dst and returns the extended slice.
func Append32(dst []byte, v uint32) []byte {
	for v >= continuation {
		dst = append(dst, byte(v)|continuation)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Append64 appends the varint encoding of v to dst and returns the extended slice.
func Append64(dst []byte, v uint64) []byte {
	for v >= continuation {
		dst = append(dst, byte(v)|continuation)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Decode32 decodes a 32-bit varint from the start of buf.
//
// Returns:
//   - uint32: The decoded value
//   - int: Number of bytes consumed
//   - error: errs.ErrUnexpectedEOF if buf ends before the last byte,
//     errs.ErrVarintOverflow if the value does not terminate within MaxLen32 bytes
func Decode32(buf []byte) (uint32, int, error) {
	var value uint32
	for i, shift := 0, uint(0); ; i, shift = i+1, shift+7 {
		if i >= len(buf) {
			return 0, 0, fmt.Errorf("%w: var32 truncated after %d bytes", errs.ErrUnexpectedEOF, i)
		}

		b := buf[i]
		value |= uint32(b&payloadMask) << shift
		if b&continuation == 0 {
			return value, i + 1, nil
		}

		if shift >= maxShift32 {
			return 0, 0, fmt.Errorf("%w: var32 exceeds %d bytes", errs.ErrVarintOverflow, MaxLen32)
		}
	}
}

// Decode64 decodes a 64-bit varint from the start of buf.
//
// Returns:
//   - uint64: The decoded value
//   - int: Number of bytes consumed
//   - error: errs.ErrUnexpectedEOF if buf ends before the last byte,
//     errs.ErrVarintOverflow if the value does not terminate within MaxLen64 bytes
func Decode64(buf []byte) (uint64, int, error) {
	var value uint64
	for i, shift := 0, uint(0); ; i, shift = i+1, shift+7 {
		if i >= len(buf) {
			return 0, 0, fmt.Errorf("%w: var64 truncated after %d bytes", errs.ErrUnexpectedEOF, i)
		}

		b := buf[i]
		value |= uint64(b&payloadMask) << shift
		if b&continuation == 0 {
			return value, i + 1, nil
		}

		if shift >= maxShift64 {
			return 0, 0, fmt.Errorf("%w: var64 exceeds %d bytes", errs.ErrVarintOverflow, MaxLen64)
		}
	}
}

// Size32 returns the number of bytes v occupies when encoded as a var32.
func Size32(v int32) int {
	switch {
	case v < 0:
		return MaxLen32
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// Size64 returns the number of bytes v occupies when encoded as a var64.
func Size64(v int64) int {
	if v < 0 {
		return MaxLen64
	}

	n := 1
	for threshold := int64(1) << 7; n < 9 && v >= threshold; threshold <<= 7 {
		n++
	}

	return n
}
