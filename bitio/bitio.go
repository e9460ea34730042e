// Package bitio packs booleans and small unsigned fields into a bit vector
// without byte padding.
//
// Bits are addressed by a single index that every operation advances. Bit i is
// stored in byte i/8 under mask 1<<(i%8), and an n-bit unsigned value is written
// least-significant bit first. Packing a 2-bit color followed by a 6-bit count
// therefore yields the same byte as (count<<2)|color:
//
//	w := bitio.NewBitWriter(8)
//	_ = w.WriteUnsigned(1, 2) // color
//	_ = w.WriteUnsigned(6, 6) // players alive
//	w.Bytes()                 // []byte{0x19}
//
// Reading and writing are split into BitReader and BitWriter; an instance of
// either type only moves in one direction.
package bitio

import (
	"fmt"

	"github.com/arloliu/binstd/errs"
)

const (
	// MaxFieldWidth is the widest unsigned field accepted by WriteUnsigned and ReadUnsigned.
	MaxFieldWidth = 32
)

func checkWidth(n int) error {
	if n < 1 || n > MaxFieldWidth {
		return errs.NewRangeError("bit field width", 1, MaxFieldWidth, int64(n))
	}

	return nil
}

// BitWriter writes bits into a fixed-capacity bit vector.
//
// A BitWriter is not safe for concurrent use.
type BitWriter struct {
	bits     []byte
	index    int // next bit to write
	capacity int // capacity in bits
}

// NewBitWriter creates a writer able to hold nBits bits.
//
// Parameters:
//   - nBits: Capacity of the bit vector in bits (negative values are treated as 0)
//
// Returns:
//   - *BitWriter: A writer positioned at bit 0
func NewBitWriter(nBits int) *BitWriter {
	if nBits < 0 {
		nBits = 0
	}

	return &BitWriter{
		bits:     make([]byte, (nBits+7)/8),
		capacity: nBits,
	}
}

// WriteBool writes one bit. The index advances by one regardless of the value.
func (w *BitWriter) WriteBool(value bool) error {
	if w.index >= w.capacity {
		return fmt.Errorf("%w: capacity %d bits", errs.ErrBitOverflow, w.capacity)
	}

	if value {
		w.bits[w.index>>3] |= 1 << (w.index & 7)
	}
	w.index++

	return nil
}

// WriteUnsigned writes the low nBits bits of value, least-significant bit first.
//
// Parameters:
//   - value: Source value; bits above nBits are ignored
//   - nBits: Field width, 1..32
//
// Returns:
//   - error: *errs.RangeError for an invalid width, errs.ErrBitOverflow if the
//     field does not fit in the remaining capacity (nothing is written then)
func (w *BitWriter) WriteUnsigned(value uint32, nBits int) error {
	if err := checkWidth(nBits); err != nil {
		return err
	}

	if w.index+nBits > w.capacity {
		return fmt.Errorf("%w: %d bits at index %d, capacity %d bits",
			errs.ErrBitOverflow, nBits, w.index, w.capacity)
	}

	for j := range nBits {
		if (value>>j)&1 != 0 {
			w.bits[w.index>>3] |= 1 << (w.index & 7)
		}
		w.index++
	}

	return nil
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int {
	return w.index
}

// Cap returns the capacity in bits.
func (w *BitWriter) Cap() int {
	return w.capacity
}

// Bytes returns a copy of the written bits, ceil(Len()/8) bytes long.
func (w *BitWriter) Bytes() []byte {
	n := (w.index + 7) / 8
	out := make([]byte, n)
	copy(out, w.bits[:n])

	return out
}

// BitReader reads bits from a byte slice in the layout produced by BitWriter.
//
// A BitReader is not safe for concurrent use.
type BitReader struct {
	data  []byte
	index int // next bit to read
}

// NewBitReader creates a reader positioned at the first bit of data.
// The reader does not copy data; the caller must not modify it while reading.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBool reads one bit.
func (r *BitReader) ReadBool() (bool, error) {
	if r.index >= len(r.data)*8 {
		return false, fmt.Errorf("%w: bit %d of %d", errs.ErrUnexpectedEOF, r.index, len(r.data)*8)
	}

	bit := r.data[r.index>>3]&(1<<(r.index&7)) != 0
	r.index++

	return bit, nil
}

// ReadUnsigned reads an nBits wide field written least-significant bit first.
//
// Parameters:
//   - nBits: Field width, 1..32
//
// Returns:
//   - uint32: The field value, right-aligned
//   - error: *errs.RangeError for an invalid width, errs.ErrUnexpectedEOF if
//     fewer than nBits bits remain (the index is left unchanged then)
func (r *BitReader) ReadUnsigned(nBits int) (uint32, error) {
	if err := checkWidth(nBits); err != nil {
		return 0, err
	}

	if r.Remaining() < nBits {
		return 0, fmt.Errorf("%w: %d bits at index %d, only %d remain",
			errs.ErrUnexpectedEOF, nBits, r.index, r.Remaining())
	}

	var value uint32
	for j := range nBits {
		if r.data[r.index>>3]&(1<<(r.index&7)) != 0 {
			value |= 1 << j
		}
		r.index++
	}

	return value, nil
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.data)*8 - r.index
}

// Index returns the number of bits read so far.
func (r *BitReader) Index() int {
	return r.index
}
