package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/binstd/bitio"
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
)

// Header is the fixed-size prefix of a frame.
//
// On the wire it is a big-endian u16 carrying the magic number in bits 4-15 and
// the version in bits 0-3, followed by one flag byte packed least significant
// bit first:
//   - bits 0-2: compression type
//   - bits 3-4: checksum type
//   - bits 5-7: reserved, must be zero
type Header struct {
	Version     uint8
	Compression format.CompressionType
	Checksum    format.ChecksumType
}

var (
	validCompressions = map[format.CompressionType]struct{}{
		format.CompressionNone: {},
		format.CompressionZstd: {},
		format.CompressionS2:   {},
		format.CompressionLZ4:  {},
	}

	validChecksums = map[format.ChecksumType]struct{}{
		format.ChecksumNone:   {},
		format.ChecksumXXH64:  {},
		format.ChecksumBLAKE3: {},
	}
)

// NewHeader creates a version 1 header without compression and with an XXH64 checksum.
func NewHeader() Header {
	return Header{
		Version:     Version1,
		Compression: format.CompressionNone,
		Checksum:    format.ChecksumXXH64,
	}
}

// Validate checks the version and the compression and checksum types.
//
// Every failure wraps errs.ErrInvalidFrameFlags; unknown algorithms also wrap
// errs.ErrUnsupportedCompression or errs.ErrUnsupportedChecksum.
func (h Header) Validate() error {
	if h.Version != Version1 {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidFrameFlags, h.Version)
	}

	if _, ok := validCompressions[h.Compression]; !ok {
		return fmt.Errorf("%w: %w 0x%x", errs.ErrInvalidFrameFlags, errs.ErrUnsupportedCompression, uint8(h.Compression))
	}

	if _, ok := validChecksums[h.Checksum]; !ok {
		return fmt.Errorf("%w: %w 0x%x", errs.ErrInvalidFrameFlags, errs.ErrUnsupportedChecksum, uint8(h.Checksum))
	}

	return nil
}

// Bytes returns the HeaderSize-byte wire form of the header.
func (h Header) Bytes() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	w := bitio.NewBitWriter(compressionBits + checksumBits + reservedBits)
	if err := w.WriteUnsigned(uint32(h.Compression), compressionBits); err != nil {
		return nil, err
	}

	if err := w.WriteUnsigned(uint32(h.Checksum), checksumBits); err != nil {
		return nil, err
	}

	if err := w.WriteUnsigned(0, reservedBits); err != nil {
		return nil, err
	}

	data := make([]byte, 0, HeaderSize)
	data = binary.BigEndian.AppendUint16(data, MagicV1|uint16(h.Version))

	return append(data, w.Bytes()...), nil
}

// Parse decodes a header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: frame header needs %d bytes, got %d", errs.ErrUnexpectedEOF, HeaderSize, len(data))
	}

	word := binary.BigEndian.Uint16(data)
	if word&MagicNumberMask != MagicV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, word&MagicNumberMask)
	}

	r := bitio.NewBitReader(data[2:HeaderSize])
	compression, err := r.ReadUnsigned(compressionBits)
	if err != nil {
		return err
	}

	checksum, err := r.ReadUnsigned(checksumBits)
	if err != nil {
		return err
	}

	reserved, err := r.ReadUnsigned(reservedBits)
	if err != nil {
		return err
	}

	if reserved != 0 {
		return fmt.Errorf("%w: reserved bits 0b%03b", errs.ErrInvalidFrameFlags, reserved)
	}

	parsed := Header{
		Version:     uint8(word & VersionMask),
		Compression: format.CompressionType(compression),
		Checksum:    format.ChecksumType(checksum),
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*h = parsed

	return nil
}

// ParseHeader decodes a header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	err := h.Parse(data)

	return h, err
}
