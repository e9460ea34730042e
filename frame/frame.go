// Package frame wraps an encoded value in a self-describing envelope for
// persisted records.
//
// Frame layout:
//
//	u16    magic | version
//	u8     flags (compression, checksum, reserved)
//	var32  stored payload length
//	[]byte stored payload, compressed when the flags say so
//	[]byte digest of the stored payload (0, 8 or 32 bytes)
//
// The payload is the plain codec encoding of the value. The digest is computed
// over the stored bytes, so corruption is detected before decompression.
//
// A frame is one complete persisted record. It carries no message boundaries
// for sockets or pipes: Unmarshal expects exactly one frame in data and fails
// on trailing bytes. Callers reading frames from a stream must delimit them
// themselves.
package frame

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/binstd/codec"
	"github.com/arloliu/binstd/compress"
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/internal/hash"
	"github.com/arloliu/binstd/varint"
	"github.com/arloliu/binstd/wire"
)

// storedLimit returns the largest stored payload accepted for a decoded size
// limit. Compressors may expand incompressible input slightly.
func storedLimit(maxDecoded int) int {
	limit := int64(maxDecoded) + int64(maxDecoded)/64 + 64
	if limit > wire.MaxLength {
		return wire.MaxLength
	}

	return int(limit)
}

// Marshal encodes v with c and wraps it in a frame.
//
// Parameters:
//   - c: Encoder for the payload value
//   - v: Value to encode
//   - opts: Frame options (compression, checksum, size limit, logger)
//
// Returns:
//   - []byte: The complete frame, owned by the caller
//   - error: Encoding, size limit or compression error
func Marshal[T any](c codec.Encoder[T], v T, opts ...Option) ([]byte, error) {
	s, err := NewSettings(opts...)
	if err != nil {
		return nil, err
	}

	comp, err := compress.GetCodec(s.Header.Compression)
	if err != nil {
		return nil, err
	}

	header, err := s.Header.Bytes()
	if err != nil {
		return nil, err
	}

	scratch := wire.NewOutput()
	defer scratch.Release()

	if err := c.Encode(scratch, v); err != nil {
		return nil, err
	}

	if err := errs.CheckRange("decompressed size", int64(scratch.Len()), int64(s.MaxDecodedSize)); err != nil {
		return nil, err
	}

	packed, err := comp.Compress(scratch.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", s.Header.Compression, err)
	}

	digest, err := hash.Append(nil, s.Header.Checksum, packed)
	if err != nil {
		return nil, err
	}

	out := wire.NewOutput(wire.WithCapacity(HeaderSize + varint.MaxLen32 + len(packed) + len(digest)))
	defer out.Release()

	out.WriteFixedBytes(header)
	if err := out.WriteDynBytes(packed); err != nil {
		return nil, err
	}
	out.WriteFixedBytes(digest)

	if ce := s.logger.Check(zap.DebugLevel, "frame encoded"); ce != nil {
		stats := compress.CompressionStats{
			Algorithm:      s.Header.Compression,
			OriginalSize:   int64(scratch.Len()),
			CompressedSize: int64(len(packed)),
		}
		ce.Write(
			zap.Stringer("compression", stats.Algorithm),
			zap.Stringer("checksum", s.Header.Checksum),
			zap.Int64("payload_size", stats.OriginalSize),
			zap.Int64("stored_size", stats.CompressedSize),
			zap.Float64("ratio", stats.CompressionRatio()),
			zap.Int("frame_size", out.Len()),
		)
	}

	return bytes.Clone(out.Bytes()), nil
}

// Unmarshal verifies and unwraps a frame and decodes its payload with c.
//
// The frame must be consumed entirely, and so must the payload; leftover bytes
// in either fail with errs.ErrTrailingBytes.
//
// Parameters:
//   - c: Decoder for the payload value
//   - data: The complete frame
//   - opts: Frame options; only WithConfig, WithMaxDecodedSize and WithLogger apply
//
// Returns:
//   - T: The decoded value
//   - error: errs.ErrInvalidMagic, errs.ErrInvalidFrameFlags,
//     errs.ErrChecksumMismatch, a size limit or a payload decode error
func Unmarshal[T any](c codec.Decoder[T], data []byte, opts ...Option) (T, error) {
	var zero T

	s, err := NewSettings(opts...)
	if err != nil {
		return zero, err
	}

	h, err := ParseHeader(data)
	if err != nil {
		return zero, err
	}

	in, err := wire.NewInput(data[HeaderSize:], wire.WithConfig(s.WireConfig))
	if err != nil {
		return zero, err
	}

	packed, err := in.ReadDynBytesMax(storedLimit(s.MaxDecodedSize))
	if err != nil {
		return zero, err
	}

	digestSize, err := hash.Size(h.Checksum)
	if err != nil {
		return zero, err
	}

	digest, err := in.ReadFixedBytes(digestSize)
	if err != nil {
		return zero, err
	}

	if in.Remaining() > 0 {
		return zero, fmt.Errorf("%w: %d bytes after frame", errs.ErrTrailingBytes, in.Remaining())
	}

	if err := hash.Verify(h.Checksum, packed, digest); err != nil {
		return zero, err
	}

	comp, err := compress.GetCodec(h.Compression)
	if err != nil {
		return zero, err
	}

	raw, err := comp.Decompress(packed, s.MaxDecodedSize)
	if err != nil {
		return zero, fmt.Errorf("decompress %s payload: %w", h.Compression, err)
	}

	payload := in.Sub(raw)
	v, err := c.Decode(payload)
	if err != nil {
		return zero, err
	}

	if payload.Remaining() > 0 {
		return zero, fmt.Errorf("%w: %d bytes after payload", errs.ErrTrailingBytes, payload.Remaining())
	}

	s.logger.Debug("frame decoded",
		zap.Stringer("compression", h.Compression),
		zap.Stringer("checksum", h.Checksum),
		zap.Int("frame_size", len(data)),
		zap.Int("payload_size", len(raw)),
	)

	return v, nil
}
