package codec

import (
	"github.com/arloliu/binstd/format"
	"github.com/arloliu/binstd/internal/hash"
	"github.com/arloliu/binstd/wire"
)

// Checksummed writes the inner encoding as length-prefixed bytes followed by
// a digest of those bytes: 8 bytes for XXH64, 32 for BLAKE3, none for
// ChecksumNone.
//
// Decoding verifies the digest before decoding the inner value and fails with
// errs.ErrChecksumMismatch on any difference.
func Checksummed[T any](c Codec[T], ct format.ChecksumType) Codec[T] {
	digestSize, sizeErr := hash.Size(ct)

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			if sizeErr != nil {
				return sizeErr
			}

			scratch := wire.NewOutput()
			defer scratch.Release()

			if err := c.Encode(scratch, v); err != nil {
				return err
			}

			digest, err := hash.Append(nil, ct, scratch.Bytes())
			if err != nil {
				return err
			}

			if err := out.WriteDynBytes(scratch.Bytes()); err != nil {
				return err
			}
			out.WriteFixedBytes(digest)

			return nil
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			var zero T
			if sizeErr != nil {
				return zero, sizeErr
			}

			payload, err := in.ReadDynBytes()
			if err != nil {
				return zero, err
			}

			digest, err := in.ReadFixedBytes(digestSize)
			if err != nil {
				return zero, err
			}

			if err := hash.Verify(ct, payload, digest); err != nil {
				return zero, err
			}

			return decodeAll(in.Sub(payload), c)
		}),
	)
}
