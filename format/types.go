// Package format declares the identifiers stored in frame headers.
package format

type (
	CompressionType uint8
	ChecksumType    uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	ChecksumNone   ChecksumType = 0x1 // ChecksumNone represents a frame without digest.
	ChecksumXXH64  ChecksumType = 0x2 // ChecksumXXH64 represents an 8-byte xxHash64 digest.
	ChecksumBLAKE3 ChecksumType = 0x3 // ChecksumBLAKE3 represents a 32-byte BLAKE3 digest.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (c ChecksumType) String() string {
	switch c {
	case ChecksumNone:
		return "None"
	case ChecksumXXH64:
		return "XXH64"
	case ChecksumBLAKE3:
		return "BLAKE3"
	default:
		return "Unknown"
	}
}
