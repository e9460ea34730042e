package codec

import (
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/wire"
)

func fixed[T any](write func(*wire.Output, T), read func(*wire.Input) (T, error)) Codec[T] {
	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			write(out, v)
			return nil
		}),
		DecodeFunc[T](read),
	)
}

// Fixed-width and variable-length scalars.
var (
	Bool = fixed((*wire.Output).WriteBool, (*wire.Input).ReadBool)
	I8   = fixed((*wire.Output).WriteI8, (*wire.Input).ReadI8)
	U8   = fixed((*wire.Output).WriteU8, (*wire.Input).ReadU8)
	I16  = fixed((*wire.Output).WriteI16, (*wire.Input).ReadI16)
	U16  = fixed((*wire.Output).WriteU16, (*wire.Input).ReadU16)
	I32  = fixed((*wire.Output).WriteI32, (*wire.Input).ReadI32)
	U32  = fixed((*wire.Output).WriteU32, (*wire.Input).ReadU32)
	I64  = fixed((*wire.Output).WriteI64, (*wire.Input).ReadI64)
	U64  = fixed((*wire.Output).WriteU64, (*wire.Input).ReadU64)
	F32  = fixed((*wire.Output).WriteF32, (*wire.Input).ReadF32)
	F64  = fixed((*wire.Output).WriteF64, (*wire.Input).ReadF64)

	// Var32 and Var64 encode the two's-complement bit pattern as an unsigned
	// varint; negative values take 5 and 10 bytes.
	Var32  = fixed((*wire.Output).WriteVar32, (*wire.Input).ReadVar32)
	Var64  = fixed((*wire.Output).WriteVar64, (*wire.Input).ReadVar64)
	UVar32 = fixed((*wire.Output).WriteUVar32, (*wire.Input).ReadUVar32)
	UVar64 = fixed((*wire.Output).WriteUVar64, (*wire.Input).ReadUVar64)

	// UUID is 16 bytes, most significant 64 bits first.
	UUID = fixed((*wire.Output).WriteUUID, (*wire.Input).ReadUUID)
)

// UTF8 is a var32 byte length followed by the string bytes, bounded on decode
// by wire.Config.MaxUTF8Size.
var UTF8 = Of(
	EncodeFunc[string]((*wire.Output).WriteUTF8),
	DecodeFunc[string]((*wire.Input).ReadUTF8),
)

// Bytes is a var32 length followed by raw bytes, bounded on decode by
// wire.Config.MaxArrayLength.
var Bytes = Of(
	EncodeFunc[[]byte]((*wire.Output).WriteDynBytes),
	DecodeFunc[[]byte]((*wire.Input).ReadDynBytes),
)

// UTF8Max is UTF8 with an explicit byte-length ceiling, checked on both sides.
func UTF8Max(maxLen int) Codec[string] {
	return Of(
		EncodeFunc[string](func(out *wire.Output, v string) error {
			if err := checkMax("utf8 size", len(v), maxLen); err != nil {
				return err
			}

			return out.WriteUTF8(v)
		}),
		DecodeFunc[string](func(in *wire.Input) (string, error) {
			return in.ReadUTF8Max(maxLen)
		}),
	)
}

// BytesMax is Bytes with an explicit length ceiling, checked on both sides.
func BytesMax(maxLen int) Codec[[]byte] {
	return Of(
		EncodeFunc[[]byte](func(out *wire.Output, v []byte) error {
			if err := checkMax("array length", len(v), maxLen); err != nil {
				return err
			}

			return out.WriteDynBytes(v)
		}),
		DecodeFunc[[]byte](func(in *wire.Input) ([]byte, error) {
			return in.ReadDynBytesMax(maxLen)
		}),
	)
}

// FixedBytes is exactly n raw bytes with no length prefix.
func FixedBytes(n int) Codec[[]byte] {
	return Of(
		EncodeFunc[[]byte](func(out *wire.Output, v []byte) error {
			if err := checkExact("array length", len(v), n); err != nil {
				return err
			}
			out.WriteFixedBytes(v)

			return nil
		}),
		DecodeFunc[[]byte](func(in *wire.Input) ([]byte, error) {
			if err := errs.CheckRange("array length", int64(n), wire.MaxLength); err != nil {
				return nil, err
			}

			return in.ReadFixedBytes(n)
		}),
	)
}

func checkMax(what string, n, maxLen int) error {
	if n > maxLen {
		return errs.NewRangeError(what, 0, int64(maxLen), int64(n))
	}

	return nil
}

func checkExact(what string, n, expected int) error {
	if n != expected {
		return errs.NewMismatchError(what, int64(expected), int64(n))
	}

	return nil
}
