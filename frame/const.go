package frame

const (
	// Bit masks of the leading u16
	VersionMask     = 0x000F // Mask for format version (bits 0-3)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicV1  = 0xB5D0 // MagicV1 identifies a binstd frame.
	Version1 = 0x1    // Version1 is the only frame version.

	// Flag byte layout, least significant bit first
	compressionBits = 3 // bits 0-2
	checksumBits    = 2 // bits 3-4
	reservedBits    = 3 // bits 5-7, must be zero

	// HeaderSize is the fixed size of the magic/version word plus the flag byte.
	HeaderSize = 3

	// DefaultMaxDecodedSize bounds the decompressed payload of a frame.
	DefaultMaxDecodedSize = 16 * 1024 * 1024 // 16MiB
)
