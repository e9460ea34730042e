package codec

import (
	"fmt"
	"slices"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/wire"
)

// RecordField is one field of a record codec.
type RecordField[T any] interface {
	encodeField(out *wire.Output, v *T) error
	decodeField(in *wire.Input, dst *T) error
}

type field[T, F any] struct {
	c   Codec[F]
	get func(T) F
	set func(*T, F)
}

// Field describes a record field by its codec, getter and setter.
func Field[T, F any](c Codec[F], get func(T) F, set func(*T, F)) RecordField[T] {
	return field[T, F]{c: c, get: get, set: set}
}

func (f field[T, F]) encodeField(out *wire.Output, v *T) error {
	return f.c.Encode(out, f.get(*v))
}

func (f field[T, F]) decodeField(in *wire.Input, dst *T) error {
	v, err := f.c.Decode(in)
	if err != nil {
		return err
	}
	f.set(dst, v)

	return nil
}

type record[T any] struct {
	fields []RecordField[T]
}

func (r record[T]) encode(out *wire.Output, v *T) error {
	for _, f := range r.fields {
		if err := f.encodeField(out, v); err != nil {
			return err
		}
	}

	return nil
}

func (r record[T]) decode(in *wire.Input, dst *T) error {
	for _, f := range r.fields {
		if err := f.decodeField(in, dst); err != nil {
			return err
		}
	}

	return nil
}

// Record encodes the fields of T in declaration order with no framing.
//
// Decode starts from the zero T and applies each field setter in the same
// order. The field order is part of the wire format: reordering fields changes
// the bytes and nothing detects a mismatch between writer and reader.
//
// Setters run on a zero T, so no constructor sees the decoded fields together.
// Types that must be validated or built by a constructor wrap the record in
// TryXmap, decoding into a plain field struct and mapping it to the final type.
//
// The fields slice is copied; changing it afterwards does not affect the codec.
func Record[T any](fields ...RecordField[T]) Codec[T] {
	r := record[T]{fields: slices.Clone(fields)}

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			return r.encode(out, &v)
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			var v T
			if err := r.decode(in, &v); err != nil {
				var zero T
				return zero, err
			}

			return v, nil
		}),
	)
}

// PointerRecord is Record for *T. Decode allocates a new T; encoding a nil
// pointer fails with errs.ErrNilValue.
func PointerRecord[T any](fields ...RecordField[T]) Codec[*T] {
	r := record[T]{fields: slices.Clone(fields)}

	return Of(
		EncodeFunc[*T](func(out *wire.Output, v *T) error {
			if v == nil {
				return fmt.Errorf("%w: record %T", errs.ErrNilValue, v)
			}

			return r.encode(out, v)
		}),
		DecodeFunc[*T](func(in *wire.Input) (*T, error) {
			v := new(T)
			if err := r.decode(in, v); err != nil {
				return nil, err
			}

			return v, nil
		}),
	)
}
