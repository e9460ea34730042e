package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeError(t *testing.T) {
	t.Run("bounded message", func(t *testing.T) {
		err := NewRangeError("array length", 0, 16383, 20000)
		require.Equal(t, "array length 20000 not in 0..16383", err.Error())
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("exact message", func(t *testing.T) {
		err := NewMismatchError("map size", 3, 2)
		require.Equal(t, "map size 2 != 3", err.Error())
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("decode field: %w", NewRangeError("utf8 length", 0, 10, -1))

		var rangeErr *RangeError
		require.True(t, errors.As(wrapped, &rangeErr))
		require.Equal(t, int64(-1), rangeErr.Value)
		require.Equal(t, int64(10), rangeErr.Max)
	})
}

func TestCheckRange(t *testing.T) {
	require.NoError(t, CheckRange("x", 0, 0))
	require.NoError(t, CheckRange("x", 5, 5))
	require.ErrorIs(t, CheckRange("x", -1, 5), ErrOutOfRange)
	require.ErrorIs(t, CheckRange("x", 6, 5), ErrOutOfRange)
}

func TestIdentityError(t *testing.T) {
	err := &IdentityError{Value: "other"}
	require.ErrorIs(t, err, ErrIdentityMismatch)
	require.Contains(t, err.Error(), "other")
}

func TestUnexpectedEOF(t *testing.T) {
	err := fmt.Errorf("%w: need 4 bytes", ErrUnexpectedEOF)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
