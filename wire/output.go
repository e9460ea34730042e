package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/internal/options"
	"github.com/arloliu/binstd/internal/pool"
	"github.com/arloliu/binstd/varint"
)

// Output is an append-only write cursor backed by a pooled buffer.
//
// Writes never fail for fixed-width values. Callers should Release the Output
// once its bytes have been copied or written out. An Output is single-owner and
// not safe for concurrent use.
type Output struct {
	buf *pool.ByteBuffer
}

// OutputOption configures an Output.
type OutputOption = options.Option[*Output]

// WithCapacity reserves room for n bytes up front.
func WithCapacity(n int) OutputOption {
	return options.NoError(func(out *Output) {
		if n > 0 {
			out.buf.Grow(n)
		}
	})
}

// NewOutput creates an empty Output.
func NewOutput(opts ...OutputOption) *Output {
	out := &Output{buf: pool.GetOutputBuffer()}
	// output options cannot fail
	_ = options.Apply(out, opts...)

	return out
}

// Bytes returns the bytes written so far.
//
// The slice aliases the internal buffer and is only valid until the next write
// or Release.
func (out *Output) Bytes() []byte {
	return out.buf.Bytes()
}

// Len returns the number of bytes written.
func (out *Output) Len() int {
	return out.buf.Len()
}

// WriteTo writes the buffered bytes to w.
func (out *Output) WriteTo(w io.Writer) (int64, error) {
	return out.buf.WriteTo(w)
}

// Release returns the buffer to the pool. The Output must not be used afterwards.
func (out *Output) Release() {
	if out.buf == nil {
		return
	}

	pool.PutOutputBuffer(out.buf)
	out.buf = nil
}

func (out *Output) WriteBool(v bool) {
	if v {
		out.buf.MustWriteByte(0x01)
	} else {
		out.buf.MustWriteByte(0x00)
	}
}

func (out *Output) WriteU8(v uint8) {
	out.buf.MustWriteByte(v)
}

func (out *Output) WriteI8(v int8) {
	out.buf.MustWriteByte(byte(v))
}

func (out *Output) WriteU16(v uint16) {
	out.buf.B = binary.BigEndian.AppendUint16(out.buf.B, v)
}

func (out *Output) WriteI16(v int16) {
	out.WriteU16(uint16(v))
}

func (out *Output) WriteU32(v uint32) {
	out.buf.B = binary.BigEndian.AppendUint32(out.buf.B, v)
}

func (out *Output) WriteI32(v int32) {
	out.WriteU32(uint32(v))
}

func (out *Output) WriteU64(v uint64) {
	out.buf.B = binary.BigEndian.AppendUint64(out.buf.B, v)
}

func (out *Output) WriteI64(v int64) {
	out.WriteU64(uint64(v))
}

func (out *Output) WriteF32(v float32) {
	out.WriteU32(math.Float32bits(v))
}

func (out *Output) WriteF64(v float64) {
	out.WriteU64(math.Float64bits(v))
}

func (out *Output) WriteUVar32(v uint32) {
	out.buf.B = varint.Append32(out.buf.B, v)
}

// WriteVar32 writes the two's-complement bit pattern of v as a var32;
// negative values take 5 bytes.
func (out *Output) WriteVar32(v int32) {
	out.WriteUVar32(uint32(v))
}

func (out *Output) WriteUVar64(v uint64) {
	out.buf.B = varint.Append64(out.buf.B, v)
}

// WriteVar64 writes the two's-complement bit pattern of v as a var64;
// negative values take 10 bytes.
func (out *Output) WriteVar64(v int64) {
	out.WriteUVar64(uint64(v))
}

// WriteLength writes a dynamic length prefix as a var32.
//
// Returns:
//   - error: *errs.RangeError if n does not fit a var32 length (0..MaxLength)
func (out *Output) WriteLength(n int) error {
	if err := errs.CheckRange("length", int64(n), MaxLength); err != nil {
		return err
	}
	out.WriteVar32(int32(n))

	return nil
}

// WriteUTF8 writes a var32 byte length followed by the bytes of s.
//
// Returns:
//   - error: errs.ErrInvalidUTF8 if s is not valid UTF-8 (nothing is written)
func (out *Output) WriteUTF8(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidUTF8, s)
	}

	if err := out.WriteLength(len(s)); err != nil {
		return err
	}
	out.buf.B = append(out.buf.B, s...)

	return nil
}

// WriteUUID writes the 16 bytes of id, high 64 bits first.
func (out *Output) WriteUUID(id uuid.UUID) {
	out.buf.MustWrite(id[:])
}

// WriteFixedBytes writes b without a length prefix.
func (out *Output) WriteFixedBytes(b []byte) {
	out.buf.MustWrite(b)
}

// WriteDynBytes writes a var32 length followed by b.
func (out *Output) WriteDynBytes(b []byte) error {
	if err := out.WriteLength(len(b)); err != nil {
		return err
	}
	out.buf.MustWrite(b)

	return nil
}
