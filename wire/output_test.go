package wire

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/binstd/errs"
)

func TestOutput_FixedWidth(t *testing.T) {
	out := NewOutput()
	defer out.Release()

	out.WriteBool(true)
	out.WriteBool(false)
	out.WriteI8(-1)
	out.WriteU16(0x1234)
	out.WriteI32(42)
	out.WriteI64(-2)
	out.WriteF64(1.5)

	require.Equal(t, []byte{
		0x01, 0x00,
		0xFF,
		0x12, 0x34,
		0x00, 0x00, 0x00, 0x2A,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
		0x3F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, out.Bytes())
	require.Equal(t, 25, out.Len())
}

func TestOutput_Varints(t *testing.T) {
	out := NewOutput()
	defer out.Release()

	out.WriteVar32(300)
	require.Equal(t, []byte{0xAC, 0x02}, out.Bytes())

	out.WriteVar32(-1)
	require.Equal(t, 2+5, out.Len())

	out.WriteVar64(-1)
	require.Equal(t, 2+5+10, out.Len())

	out.WriteUVar64(math.MaxUint64)
	require.Equal(t, 2+5+10+10, out.Len())
}

func TestOutput_WriteUTF8(t *testing.T) {
	out := NewOutput()
	defer out.Release()

	require.NoError(t, out.WriteUTF8("héllo"))
	require.Equal(t, append([]byte{0x06}, "héllo"...), out.Bytes())

	err := out.WriteUTF8(string([]byte{0xC3, 0x28}))
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	require.Equal(t, 7, out.Len(), "invalid string must not write anything")
}

func TestOutput_WriteLength(t *testing.T) {
	out := NewOutput()
	defer out.Release()

	require.ErrorIs(t, out.WriteLength(-1), errs.ErrOutOfRange)
	require.ErrorIs(t, out.WriteLength(math.MaxInt32+1), errs.ErrOutOfRange)
	require.Equal(t, 0, out.Len())

	require.NoError(t, out.WriteLength(math.MaxInt32))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}, out.Bytes())
}

func TestOutput_BytesAndUUID(t *testing.T) {
	out := NewOutput(WithCapacity(64))
	defer out.Release()

	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	out.WriteUUID(id)
	out.WriteFixedBytes([]byte{0xAA})
	require.NoError(t, out.WriteDynBytes([]byte{0x01, 0x02}))

	want := append(append([]byte{}, id[:]...), 0xAA, 0x02, 0x01, 0x02)
	require.Equal(t, want, out.Bytes())

	var w bytes.Buffer
	n, err := out.WriteTo(&w)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, w.Bytes())
}

func TestOutput_RoundTripThroughInput(t *testing.T) {
	out := NewOutput()
	defer out.Release()

	nan := math.Float64frombits(0x7FF8_0000_0000_0001)
	out.WriteF64(nan)
	out.WriteU32(math.MaxUint32)
	out.WriteI16(math.MinInt16)

	in, err := NewInput(out.Bytes())
	require.NoError(t, err)

	f, err := in.ReadF64()
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(nan), math.Float64bits(f))

	u32, err := in.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)

	i16, err := in.ReadI16()
	require.NoError(t, err)
	require.Equal(t, int16(math.MinInt16), i16)
}

func TestOutput_ReleaseTwice(t *testing.T) {
	out := NewOutput()
	out.Release()
	out.Release()
}
