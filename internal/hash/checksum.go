// Package hash computes the payload digests stored in frames and by the
// Checksummed codec.
package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
)

const (
	XXH64Size  = 8
	BLAKE3Size = 32
)

// Size returns the digest length in bytes for the checksum type.
func Size(ct format.ChecksumType) (int, error) {
	switch ct {
	case format.ChecksumNone:
		return 0, nil
	case format.ChecksumXXH64:
		return XXH64Size, nil
	case format.ChecksumBLAKE3:
		return BLAKE3Size, nil
	default:
		return 0, fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedChecksum, uint8(ct))
	}
}

// Append appends the digest of data to dst.
//
// XXH64 digests are written big-endian; ChecksumNone appends nothing.
func Append(dst []byte, ct format.ChecksumType, data []byte) ([]byte, error) {
	switch ct {
	case format.ChecksumNone:
		return dst, nil
	case format.ChecksumXXH64:
		return binary.BigEndian.AppendUint64(dst, xxhash.Sum64(data)), nil
	case format.ChecksumBLAKE3:
		sum := blake3.Sum256(data)
		return append(dst, sum[:]...), nil
	default:
		return dst, fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedChecksum, uint8(ct))
	}
}

// Verify checks that digest is the checksum of data.
func Verify(ct format.ChecksumType, data, digest []byte) error {
	want, err := Append(make([]byte, 0, BLAKE3Size), ct, data)
	if err != nil {
		return err
	}

	if len(want) != len(digest) {
		return fmt.Errorf("%w: %s digest is %d bytes, got %d", errs.ErrChecksumMismatch, ct, len(want), len(digest))
	}

	for i := range want {
		if want[i] != digest[i] {
			return fmt.Errorf("%w: %s", errs.ErrChecksumMismatch, ct)
		}
	}

	return nil
}
