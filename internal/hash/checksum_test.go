package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
)

func TestSize(t *testing.T) {
	tests := []struct {
		ct   format.ChecksumType
		want int
	}{
		{format.ChecksumNone, 0},
		{format.ChecksumXXH64, 8},
		{format.ChecksumBLAKE3, 32},
	}
	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			n, err := Size(tt.ct)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}

	_, err := Size(format.ChecksumType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedChecksum)
}

func TestAppend_KnownDigests(t *testing.T) {
	t.Run("xxh64 empty", func(t *testing.T) {
		got, err := Append(nil, format.ChecksumXXH64, nil)
		require.NoError(t, err)
		assert.Equal(t, "ef46db3751d8e999", hex.EncodeToString(got))
	})

	t.Run("xxh64 test", func(t *testing.T) {
		got, err := Append(nil, format.ChecksumXXH64, []byte("test"))
		require.NoError(t, err)
		assert.Equal(t, "4fdcca5ddb678139", hex.EncodeToString(got))
	})

	t.Run("blake3 empty", func(t *testing.T) {
		got, err := Append(nil, format.ChecksumBLAKE3, nil)
		require.NoError(t, err)
		assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", hex.EncodeToString(got))
	})

	t.Run("none", func(t *testing.T) {
		got, err := Append([]byte{0x01}, format.ChecksumNone, []byte("ignored"))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01}, got)
	})
}

func TestVerify(t *testing.T) {
	data := []byte("payload")

	for _, ct := range []format.ChecksumType{format.ChecksumNone, format.ChecksumXXH64, format.ChecksumBLAKE3} {
		t.Run(ct.String(), func(t *testing.T) {
			digest, err := Append(nil, ct, data)
			require.NoError(t, err)
			require.NoError(t, Verify(ct, data, digest))

			if len(digest) > 0 {
				digest[0] ^= 0xFF
				require.ErrorIs(t, Verify(ct, data, digest), errs.ErrChecksumMismatch)
			}

			require.ErrorIs(t, Verify(ct, data, append(digest, 0x00)), errs.ErrChecksumMismatch)
		})
	}

	require.ErrorIs(t, Verify(format.ChecksumType(9), data, nil), errs.ErrUnsupportedChecksum)
}
