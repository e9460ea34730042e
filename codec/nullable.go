package codec

import "github.com/arloliu/binstd/wire"

// Opt is a value that may be absent.
type Opt[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Present: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// Nullable encodes a nil pointer as the single byte 0x00 and a non-nil pointer
// as 0x01 followed by the pointed-to value.
func Nullable[T any](c Codec[T]) Codec[*T] {
	return Of(
		EncodeFunc[*T](func(out *wire.Output, v *T) error {
			if v == nil {
				return wire.WriteNullable(out, *new(T), false, writer(c))
			}

			return wire.WriteNullable(out, *v, true, writer(c))
		}),
		DecodeFunc[*T](func(in *wire.Input) (*T, error) {
			v, ok, err := wire.ReadNullable(in, reader(c))
			if err != nil || !ok {
				return nil, err
			}

			return &v, nil
		}),
	)
}

// Optional has the same wire form as Nullable over an Opt value.
func Optional[T any](c Codec[T]) Codec[Opt[T]] {
	return Of(
		EncodeFunc[Opt[T]](func(out *wire.Output, v Opt[T]) error {
			return wire.WriteNullable(out, v.Value, v.Present, writer(c))
		}),
		DecodeFunc[Opt[T]](func(in *wire.Input) (Opt[T], error) {
			v, ok, err := wire.ReadNullable(in, reader(c))
			if err != nil {
				return Opt[T]{}, err
			}

			return Opt[T]{Value: v, Present: ok}, nil
		}),
	)
}
