package bitio

import (
	"testing"

	"github.com/arloliu/binstd/errs"
	"github.com/stretchr/testify/require"
)

func TestBitWriter_WriteBool(t *testing.T) {
	w := NewBitWriter(10)

	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteBool(false))
	require.NoError(t, w.WriteBool(true))
	require.Equal(t, 3, w.Len())
	require.Equal(t, []byte{0b101}, w.Bytes())

	// false still advances the index
	for range 6 {
		require.NoError(t, w.WriteBool(false))
	}
	require.NoError(t, w.WriteBool(true))
	require.Equal(t, 10, w.Len())
	require.Equal(t, []byte{0b101, 0b10}, w.Bytes())
}

func TestBitWriter_TeamPacking(t *testing.T) {
	w := NewBitWriter(8)
	require.NoError(t, w.WriteUnsigned(1, 2)) // YELLOW
	require.NoError(t, w.WriteUnsigned(6, 6)) // players alive
	require.Equal(t, []byte{0x19}, w.Bytes())

	r := NewBitReader(w.Bytes())
	color, err := r.ReadUnsigned(2)
	require.NoError(t, err)
	players, err := r.ReadUnsigned(6)
	require.NoError(t, err)
	require.Equal(t, uint32(1), color)
	require.Equal(t, uint32(6), players)
	require.Equal(t, 0, r.Remaining())
}

func TestBitWriter_Overflow(t *testing.T) {
	w := NewBitWriter(4)
	require.NoError(t, w.WriteUnsigned(0xF, 3))

	err := w.WriteUnsigned(0x3, 2)
	require.ErrorIs(t, err, errs.ErrBitOverflow)
	require.Equal(t, 3, w.Len(), "failed write must not advance")

	require.NoError(t, w.WriteBool(true))
	require.ErrorIs(t, w.WriteBool(true), errs.ErrBitOverflow)
	require.Equal(t, []byte{0xF}, w.Bytes())
}

func TestBitWriter_InvalidWidth(t *testing.T) {
	w := NewBitWriter(64)
	require.ErrorIs(t, w.WriteUnsigned(1, 0), errs.ErrOutOfRange)
	require.ErrorIs(t, w.WriteUnsigned(1, 33), errs.ErrOutOfRange)

	r := NewBitReader([]byte{0xFF})
	_, err := r.ReadUnsigned(0)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestRoundTrip_MixedFields(t *testing.T) {
	w := NewBitWriter(1 + 32 + 5 + 1)
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteUnsigned(0xDEADBEEF, 32))
	require.NoError(t, w.WriteUnsigned(0b10110, 5))
	require.NoError(t, w.WriteBool(false))
	require.Len(t, w.Bytes(), 5)

	r := NewBitReader(w.Bytes())
	flag, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, flag)

	word, err := r.ReadUnsigned(32)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), word)

	small, err := r.ReadUnsigned(5)
	require.NoError(t, err)
	require.Equal(t, uint32(0b10110), small)

	last, err := r.ReadBool()
	require.NoError(t, err)
	require.False(t, last)
	require.Equal(t, 39, r.Index())
}

func TestBitReader_PastEnd(t *testing.T) {
	r := NewBitReader([]byte{0x01})

	_, err := r.ReadUnsigned(9)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	require.Equal(t, 0, r.Index())

	v, err := r.ReadUnsigned(8)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)

	_, err = r.ReadBool()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

// A single instance must never be able to both read and write.
func TestReaderWriterSeparation(t *testing.T) {
	type boolWriter interface {
		WriteBool(bool) error
	}
	type unsignedWriter interface {
		WriteUnsigned(uint32, int) error
	}
	type boolReader interface {
		ReadBool() (bool, error)
	}
	type unsignedReader interface {
		ReadUnsigned(int) (uint32, error)
	}

	var writer any = NewBitWriter(8)
	var reader any = NewBitReader([]byte{0})

	_, ok := writer.(boolReader)
	require.False(t, ok)
	_, ok = writer.(unsignedReader)
	require.False(t, ok)

	_, ok = reader.(boolWriter)
	require.False(t, ok)
	_, ok = reader.(unsignedWriter)
	require.False(t, ok)
}
