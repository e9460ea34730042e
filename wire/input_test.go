package wire

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstd/errs"
)

func newInput(t *testing.T, data []byte, opts ...InputOption) *Input {
	t.Helper()

	in, err := NewInput(data, opts...)
	require.NoError(t, err)

	return in
}

func TestNewInput_Options(t *testing.T) {
	in := newInput(t, nil)
	require.Equal(t, DefaultConfig, in.Config())

	in = newInput(t, nil, WithConfig(UnrestrictedConfig), WithMaxMapSize(3))
	require.Equal(t, Config{math.MaxInt32, math.MaxInt32, 3}, in.Config())

	in = newInput(t, nil, WithMaxUTF8Size(1), WithMaxArrayLength(2))
	require.Equal(t, Config{1, 2, DefaultMaxSize}, in.Config())

	_, err := NewInput(nil, WithMaxArrayLength(-1))
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = NewInput(nil, WithConfig(Config{MaxUTF8Size: -1}))
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestNewInput_OptionOrder(t *testing.T) {
	// WithConfig replaces every ceiling, so it wins over earlier single setters
	in := newInput(t, nil, WithMaxMapSize(3), WithConfig(DefaultConfig))
	require.Equal(t, DefaultConfig, in.Config())

	in = newInput(t, nil, WithMaxUTF8Size(5), WithMaxUTF8Size(9))
	require.Equal(t, 9, in.Config().MaxUTF8Size)

	// a rejected option leaves no partially configured input behind
	in, err := NewInput([]byte{1}, WithMaxUTF8Size(5), WithMaxMapSize(MaxLength+1), WithMaxArrayLength(2))
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	require.Nil(t, in)

	var re *errs.RangeError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "max map size", re.What)
}

func TestInput_FixedWidth(t *testing.T) {
	data := []byte{
		0x01,       // bool
		0xFF,       // i8 -1
		0x12, 0x34, // u16
		0x00, 0x00, 0x00, 0x2A, // i32 42
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE, // i64 -2
		0x3F, 0x80, 0x00, 0x00, // f32 1.0
	}
	in := newInput(t, data)

	b, err := in.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	i8, err := in.ReadI8()
	require.NoError(t, err)
	require.Equal(t, int8(-1), i8)

	u16, err := in.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	i32, err := in.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(42), i32)

	i64, err := in.ReadI64()
	require.NoError(t, err)
	require.Equal(t, int64(-2), i64)

	f32, err := in.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(1.0), f32)

	require.Equal(t, len(data), in.BytesRead())
	require.Equal(t, 0, in.Remaining())

	_, err = in.ReadU8()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestInput_ReadBool_Strict(t *testing.T) {
	in := newInput(t, []byte{0x00, 0x02})

	v, err := in.ReadBool()
	require.NoError(t, err)
	require.False(t, v)

	_, err = in.ReadBool()
	require.ErrorIs(t, err, errs.ErrInvalidBool)
}

func TestInput_ShortRead_DoesNotAdvance(t *testing.T) {
	in := newInput(t, []byte{0x00, 0x01, 0x02})

	_, err := in.ReadI32()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	require.Equal(t, 0, in.BytesRead())
}

func TestInput_Varints(t *testing.T) {
	in := newInput(t, []byte{0xAC, 0x02, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0x01})

	v, err := in.ReadVar32()
	require.NoError(t, err)
	require.Equal(t, int32(300), v)

	neg, err := in.ReadVar32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), neg)

	u, err := in.ReadUVar64()
	require.NoError(t, err)
	require.Equal(t, uint64(1), u)
	require.Equal(t, 8, in.BytesRead())

	_, err = newInput(t, []byte{0x80}).ReadVar64()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)

	_, err = newInput(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}).ReadUVar32()
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}

func TestInput_ReadLength(t *testing.T) {
	t.Run("within ceiling", func(t *testing.T) {
		n, err := newInput(t, []byte{0x05}).ReadLength(5)
		require.NoError(t, err)
		require.Equal(t, 5, n)
	})

	t.Run("above ceiling", func(t *testing.T) {
		_, err := newInput(t, []byte{0x06}).ReadLength(5)

		var rangeErr *errs.RangeError
		require.ErrorAs(t, err, &rangeErr)
		require.Equal(t, int64(6), rangeErr.Value)
		require.Equal(t, int64(5), rangeErr.Max)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := newInput(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}).ReadLength(math.MaxInt32)
		require.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestInput_ReadUTF8(t *testing.T) {
	in := newInput(t, []byte{0x02, 'h', 'i', 0x00})

	s, err := in.ReadUTF8()
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	empty, err := in.ReadUTF8()
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = newInput(t, []byte{0x02, 0xC3, 0x28}).ReadUTF8()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)

	_, err = newInput(t, []byte{0x03, 'a', 'b', 'c'}, WithMaxUTF8Size(2)).ReadUTF8()
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = newInput(t, []byte{0x03, 'a', 'b', 'c'}).ReadUTF8Max(2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = newInput(t, []byte{0x05, 'a'}).ReadUTF8()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestInput_ReadUUID(t *testing.T) {
	id := uuid.MustParse("0102f3f4-0506-0708-090a-0b0c0d0e0f10")
	in := newInput(t, id[:])

	got, err := in.ReadUUID()
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = newInput(t, id[:15]).ReadUUID()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestInput_Bytes(t *testing.T) {
	data := []byte{0x03, 0x0A, 0x0B, 0x0C, 0xEE}
	in := newInput(t, data)

	b, err := in.ReadDynBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x0A, 0x0B, 0x0C}, b)

	data[1] = 0x00
	require.Equal(t, byte(0x0A), b[0], "returned bytes must not alias the input")

	fixed, err := in.ReadFixedBytes(1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEE}, fixed)

	_, err = newInput(t, []byte{0x03, 0x01, 0x02, 0x03}, WithMaxArrayLength(2)).ReadDynBytes()
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = newInput(t, []byte{0x03, 0x01, 0x02, 0x03}).ReadDynBytesMax(2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestInput_ReadFixedBytesNegative(t *testing.T) {
	in := newInput(t, []byte{0x01, 0x02, 0x03})

	_, err := in.ReadFixedBytes(-1)
	var rangeErr *errs.RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, int64(-1), rangeErr.Value)
	require.Zero(t, in.BytesRead())

	b, err := in.ReadFixedBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, b)
}

func TestInput_Sub(t *testing.T) {
	in := newInput(t, []byte{0x01}, WithMaxMapSize(7))
	sub := in.Sub([]byte{0x02, 0x03})

	require.Equal(t, in.Config(), sub.Config())
	require.Equal(t, 2, sub.Remaining())
	require.Equal(t, 1, in.Remaining())
}
