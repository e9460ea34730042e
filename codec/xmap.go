package codec

import "github.com/arloliu/binstd/wire"

// Xmap views a codec of T as a codec of U through an isomorphism.
//
// Decode applies forward to the decoded T; Encode applies backward before
// delegating. A typical use is a packed bit-field struct over an integer:
//
//	var TeamCodec = codec.Xmap(codec.U8,
//		func(b uint8) Team { return Team{Players: b >> 2, Color: Color(b & 0b11)} },
//		func(t Team) uint8 { return t.Players<<2 | uint8(t.Color) },
//	)
func Xmap[T, U any](c Codec[T], forward func(T) U, backward func(U) T) Codec[U] {
	return Of(
		EncodeFunc[U](func(out *wire.Output, v U) error {
			return c.Encode(out, backward(v))
		}),
		DecodeFunc[U](func(in *wire.Input) (U, error) {
			v, err := c.Decode(in)
			if err != nil {
				var zero U
				return zero, err
			}

			return forward(v), nil
		}),
	)
}

// TryXmap is Xmap with mappers that can reject values.
func TryXmap[T, U any](c Codec[T], forward func(T) (U, error), backward func(U) (T, error)) Codec[U] {
	return Of(
		EncodeFunc[U](func(out *wire.Output, v U) error {
			t, err := backward(v)
			if err != nil {
				return err
			}

			return c.Encode(out, t)
		}),
		DecodeFunc[U](func(in *wire.Input) (U, error) {
			t, err := c.Decode(in)
			if err != nil {
				var zero U
				return zero, err
			}

			return forward(t)
		}),
	)
}
