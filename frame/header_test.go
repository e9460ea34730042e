package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
)

func TestHeader_Bytes(t *testing.T) {
	data, err := NewHeader().Bytes()
	require.NoError(t, err)
	// compression None (1) in bits 0-2, checksum XXH64 (2) in bits 3-4
	require.Equal(t, []byte{0xB5, 0xD1, 0x11}, data)

	h := Header{Version: Version1, Compression: format.CompressionLZ4, Checksum: format.ChecksumBLAKE3}
	data, err = h.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xB5, 0xD1, 0x1C}, data)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestHeader_BytesInvalid(t *testing.T) {
	_, err := Header{Version: 2, Compression: format.CompressionNone, Checksum: format.ChecksumNone}.Bytes()
	require.ErrorIs(t, err, errs.ErrInvalidFrameFlags)

	_, err = Header{Version: Version1, Compression: 7, Checksum: format.ChecksumNone}.Bytes()
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestParseHeader_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []error
	}{
		{"short", []byte{0xB5, 0xD1}, []error{errs.ErrUnexpectedEOF}},
		{"bad magic", []byte{0x12, 0x31, 0x11}, []error{errs.ErrInvalidMagic}},
		{"bad version", []byte{0xB5, 0xD2, 0x11}, []error{errs.ErrInvalidFrameFlags}},
		{"version zero", []byte{0xB5, 0xD0, 0x11}, []error{errs.ErrInvalidFrameFlags}},
		{"reserved bit", []byte{0xB5, 0xD1, 0x31}, []error{errs.ErrInvalidFrameFlags}},
		{"compression zero", []byte{0xB5, 0xD1, 0x10}, []error{errs.ErrInvalidFrameFlags, errs.ErrUnsupportedCompression}},
		{"compression five", []byte{0xB5, 0xD1, 0x15}, []error{errs.ErrInvalidFrameFlags, errs.ErrUnsupportedCompression}},
		{"checksum zero", []byte{0xB5, 0xD1, 0x01}, []error{errs.ErrInvalidFrameFlags, errs.ErrUnsupportedChecksum}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Header
			err := h.Parse(tt.data)
			for _, want := range tt.want {
				require.ErrorIs(t, err, want)
			}
			require.Equal(t, Header{}, h, "failed parse must not modify the header")
		})
	}
}
