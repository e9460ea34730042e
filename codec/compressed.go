package codec

import (
	"fmt"

	"github.com/arloliu/binstd/compress"
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
	"github.com/arloliu/binstd/wire"
)

// Compressed encodes the inner value into a scratch buffer, compresses it and
// writes the result as length-prefixed bytes.
//
// Decoding bounds the compressed length by wire.Config.MaxArrayLength and the
// decompressed length by maxDecoded, then decodes the inner value from the
// decompressed bytes, which it must consume entirely (errs.ErrTrailingBytes).
// An unknown compression type fails every call with
// errs.ErrUnsupportedCompression.
func Compressed[T any](c Codec[T], ct format.CompressionType, maxDecoded int) Codec[T] {
	comp, compErr := compress.GetCodec(ct)

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			if compErr != nil {
				return compErr
			}

			scratch := wire.NewOutput()
			defer scratch.Release()

			if err := c.Encode(scratch, v); err != nil {
				return err
			}

			if err := checkMax("decompressed size", scratch.Len(), maxDecoded); err != nil {
				return err
			}

			packed, err := comp.Compress(scratch.Bytes())
			if err != nil {
				return fmt.Errorf("compress %s payload: %w", ct, err)
			}

			return out.WriteDynBytes(packed)
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			var zero T
			if compErr != nil {
				return zero, compErr
			}

			packed, err := in.ReadDynBytes()
			if err != nil {
				return zero, err
			}

			raw, err := comp.Decompress(packed, maxDecoded)
			if err != nil {
				return zero, fmt.Errorf("decompress %s payload: %w", ct, err)
			}

			return decodeAll(in.Sub(raw), c)
		}),
	)
}

func decodeAll[T any](in *wire.Input, c Decoder[T]) (T, error) {
	v, err := c.Decode(in)
	if err != nil {
		return v, err
	}

	if in.Remaining() > 0 {
		var zero T
		return zero, fmt.Errorf("%w: %d bytes", errs.ErrTrailingBytes, in.Remaining())
	}

	return v, nil
}
