package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstd/wire"
)

func encode[T any](t *testing.T, c Codec[T], v T) []byte {
	t.Helper()

	out := wire.NewOutput()
	defer out.Release()

	require.NoError(t, c.Encode(out, v))

	return append([]byte{}, out.Bytes()...)
}

func decode[T any](t *testing.T, c Codec[T], data []byte, opts ...wire.InputOption) (T, error) {
	t.Helper()

	in, err := wire.NewInput(data, opts...)
	require.NoError(t, err)

	v, err := c.Decode(in)
	if err == nil {
		require.Zero(t, in.Remaining(), "decode must consume every encoded byte")
	}

	return v, err
}

// roundTrip encodes v, checks the bytes when want is non-nil, and decodes them back.
func roundTrip[T any](t *testing.T, c Codec[T], v T, want []byte) T {
	t.Helper()

	data := encode(t, c, v)
	if want != nil {
		require.Equal(t, want, data)
	}

	got, err := decode(t, c, data)
	require.NoError(t, err)

	return got
}
