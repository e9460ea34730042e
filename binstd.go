// Package binstd provides composable binary codecs for compact, validated
// serialization of structured records.
//
// A codec pairs an encoder and a decoder for one Go type. Codecs for
// primitives live in the codec package and are composed explicitly, field by
// field, into codecs for records, arrays, collections, maps, enums and
// optional values. The resulting wire format is compact (big-endian
// fixed-width numbers, LEB128 varints for lengths) and every length read from
// the wire is checked against a ceiling before any memory is allocated.
//
// # Core Features
//
//   - Fixed-width and varint primitives, UTF-8 strings, UUIDs and byte arrays
//   - Record codecs built from typed field accessors, in declaration order
//   - Fixed and length-prefixed arrays, collections, sets and maps
//   - Nullable values with a one-byte presence tag
//   - Enum codecs by ordinal, value mapping (Xmap) and recursive codecs (Lazy)
//   - Decode ceilings per cursor (wire.Config) against hostile length fields
//   - Optional compression (Zstd, S2, LZ4) and checksums (xxHash64, BLAKE3)
//   - Self-describing frames for persisted records (frame package)
//
// # Basic Usage
//
// Building a record codec:
//
//	type Point struct {
//	    X, Y int32
//	}
//
//	pointCodec := codec.Record(
//	    codec.Field(codec.Var32, func(p Point) int32 { return p.X }, func(p *Point, v int32) { p.X = v }),
//	    codec.Field(codec.Var32, func(p Point) int32 { return p.Y }, func(p *Point, v int32) { p.Y = v }),
//	)
//
// Encoding and decoding:
//
//	data, _ := binstd.Marshal(pointCodec, Point{X: 3, Y: -1})
//	p, _ := binstd.UnmarshalExact(pointCodec, data)
//
// Decoding untrusted input with tighter ceilings:
//
//	p, err := binstd.UnmarshalExact(pointCodec, data, wire.WithMaxArrayLength(64))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// wire packages. Use those packages directly to stream several values through
// one cursor, and the frame package for versioned, checksummed envelopes.
package binstd

import (
	"bytes"
	"fmt"

	"github.com/arloliu/binstd/codec"
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/wire"
)

// Marshal encodes v with c.
//
// Parameters:
//   - c: Encoder for the value
//   - v: Value to encode
//
// Returns:
//   - []byte: The encoded bytes, owned by the caller
//   - error: The first encoding error, such as a size ceiling violation
//
// Example:
//
//	data, err := binstd.Marshal(codec.UTF8, "Ferike")
//	// data = []byte{0x06, 'F', 'e', 'r', 'i', 'k', 'e'}
func Marshal[T any](c codec.Encoder[T], v T) ([]byte, error) {
	out := wire.NewOutput()
	defer out.Release()

	if err := c.Encode(out, v); err != nil {
		return nil, err
	}

	return bytes.Clone(out.Bytes()), nil
}

// Unmarshal decodes one value from the start of data with c.
//
// Bytes after the value are ignored. Use UnmarshalExact to reject them.
//
// Parameters:
//   - c: Decoder for the value
//   - data: Encoded bytes
//   - opts: Input options, such as wire.WithConfig or wire.WithMaxUTF8Size
//
// Returns:
//   - T: The decoded value
//   - error: A decode error; the zero value is returned with it
func Unmarshal[T any](c codec.Decoder[T], data []byte, opts ...wire.InputOption) (T, error) {
	v, _, err := unmarshal(c, data, opts...)
	return v, err
}

// UnmarshalExact decodes one value with c and fails with errs.ErrTrailingBytes
// unless the value spans all of data.
func UnmarshalExact[T any](c codec.Decoder[T], data []byte, opts ...wire.InputOption) (T, error) {
	v, remaining, err := unmarshal(c, data, opts...)
	if err != nil {
		return v, err
	}

	if remaining > 0 {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d bytes unread", errs.ErrTrailingBytes, remaining, len(data))
	}

	return v, nil
}

func unmarshal[T any](c codec.Decoder[T], data []byte, opts ...wire.InputOption) (T, int, error) {
	var zero T

	in, err := wire.NewInput(data, opts...)
	if err != nil {
		return zero, 0, err
	}

	v, err := c.Decode(in)
	if err != nil {
		return zero, 0, err
	}

	return v, in.Remaining(), nil
}

// Size returns the number of bytes c writes for v.
func Size[T any](c codec.Encoder[T], v T) (int, error) {
	out := wire.NewOutput()
	defer out.Release()

	if err := c.Encode(out, v); err != nil {
		return 0, err
	}

	return out.Len(), nil
}
