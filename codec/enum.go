package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/wire"
)

// Integer is the set of integer kinds usable as enum ordinals.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func readOrdinal(in *wire.Input, count int) (int, error) {
	v, err := in.ReadVar32()
	if err != nil {
		return 0, err
	}

	if v < 0 || int(v) >= count {
		return 0, errs.NewRangeError("enum ordinal", 0, int64(count)-1, int64(v))
	}

	return int(v), nil
}

// Enum encodes a value as the var32 position of its first occurrence in
// variants. Decoding an ordinal outside 0..len(variants)-1 fails with
// *errs.RangeError; encoding a value not in variants fails with
// errs.ErrUnknownVariant.
func Enum[T comparable](variants ...T) Codec[T] {
	list := append([]T(nil), variants...)
	index := make(map[T]int32, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		index[list[i]] = int32(i)
	}

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			ordinal, ok := index[v]
			if !ok {
				return fmt.Errorf("%w: %v", errs.ErrUnknownVariant, v)
			}
			out.WriteVar32(ordinal)

			return nil
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			ordinal, err := readOrdinal(in, len(list))
			if err != nil {
				var zero T
				return zero, err
			}

			return list[ordinal], nil
		}),
	)
}

// Ordinal encodes an iota-style enum with values 0..count-1 as a var32.
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Yellow
//		Green
//		Blue
//	)
//
//	var ColorCodec = codec.Ordinal[Color](4)
func Ordinal[T Integer](count int) Codec[T] {
	count = max(0, min(count, math.MaxInt32))

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			if uint64(v) >= uint64(count) {
				return fmt.Errorf("%w: ordinal %d of %d", errs.ErrUnknownVariant, v, count)
			}
			out.WriteVar32(int32(v))

			return nil
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			ordinal, err := readOrdinal(in, count)
			if err != nil {
				return 0, err
			}

			return T(ordinal), nil
		}),
	)
}
