package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/internal/options"
	"github.com/arloliu/binstd/varint"
)

// Input is a read cursor over an immutable byte slice.
//
// Every read advances the cursor by exactly the number of bytes the value
// occupies. Dynamic-length reads are bounded by the Config attached at
// construction. An Input is single-owner and not safe for concurrent use.
type Input struct {
	data []byte
	off  int
	cfg  Config
}

// InputOption configures an Input.
type InputOption = options.Option[*Input]

// WithConfig replaces all ceilings of the input.
func WithConfig(cfg Config) InputOption {
	return options.New(func(in *Input) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		in.cfg = cfg

		return nil
	})
}

// WithMaxUTF8Size sets the string byte-length ceiling.
func WithMaxUTF8Size(n int) InputOption {
	return options.New(func(in *Input) error {
		if err := errs.CheckRange("max utf8 size", int64(n), MaxLength); err != nil {
			return err
		}
		in.cfg.MaxUTF8Size = n

		return nil
	})
}

// WithMaxArrayLength sets the array and collection length ceiling.
func WithMaxArrayLength(n int) InputOption {
	return options.New(func(in *Input) error {
		if err := errs.CheckRange("max array length", int64(n), MaxLength); err != nil {
			return err
		}
		in.cfg.MaxArrayLength = n

		return nil
	})
}

// WithMaxMapSize sets the map entry-count ceiling.
func WithMaxMapSize(n int) InputOption {
	return options.New(func(in *Input) error {
		if err := errs.CheckRange("max map size", int64(n), MaxLength); err != nil {
			return err
		}
		in.cfg.MaxMapSize = n

		return nil
	})
}

// NewInput creates an Input positioned at the start of data.
//
// The input starts with DefaultConfig; options are applied in order. data is not
// copied and must not be modified while the Input is in use.
//
// Returns:
//   - *Input: The read cursor
//   - error: *errs.RangeError if an option sets an invalid ceiling
func NewInput(data []byte, opts ...InputOption) (*Input, error) {
	in := &Input{data: data, cfg: DefaultConfig}
	if err := options.Apply(in, opts...); err != nil {
		return nil, err
	}

	return in, nil
}

// Sub creates an Input over data that shares this input's Config.
func (in *Input) Sub(data []byte) *Input {
	return &Input{data: data, cfg: in.cfg}
}

// Config returns the ceilings of the input.
func (in *Input) Config() Config {
	return in.cfg
}

// BytesRead returns the number of bytes consumed so far.
func (in *Input) BytesRead() int {
	return in.off
}

// Remaining returns the number of unread bytes.
func (in *Input) Remaining() int {
	return len(in.data) - in.off
}

func (in *Input) next(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, errs.CheckRange(what, int64(n), MaxLength)
	}

	if in.Remaining() < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, %d remain",
			errs.ErrUnexpectedEOF, what, n, in.off, in.Remaining())
	}

	b := in.data[in.off : in.off+n]
	in.off += n

	return b, nil
}

// ReadBool reads a single byte that must be 0x00 or 0x01.
func (in *Input) ReadBool() (bool, error) {
	b, err := in.next(1, "bool")
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidBool, b[0], in.off-1)
	}
}

func (in *Input) ReadU8() (uint8, error) {
	b, err := in.next(1, "u8")
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (in *Input) ReadI8() (int8, error) {
	v, err := in.ReadU8()
	return int8(v), err
}

func (in *Input) ReadU16() (uint16, error) {
	b, err := in.next(2, "u16")
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (in *Input) ReadI16() (int16, error) {
	v, err := in.ReadU16()
	return int16(v), err
}

func (in *Input) ReadU32() (uint32, error) {
	b, err := in.next(4, "u32")
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

func (in *Input) ReadI32() (int32, error) {
	v, err := in.ReadU32()
	return int32(v), err
}

func (in *Input) ReadU64() (uint64, error) {
	b, err := in.next(8, "u64")
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b), nil
}

func (in *Input) ReadI64() (int64, error) {
	v, err := in.ReadU64()
	return int64(v), err
}

// ReadF32 reads an IEEE-754 single. NaN payloads are preserved bit-for-bit.
func (in *Input) ReadF32() (float32, error) {
	v, err := in.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads an IEEE-754 double. NaN payloads are preserved bit-for-bit.
func (in *Input) ReadF64() (float64, error) {
	v, err := in.ReadU64()
	return math.Float64frombits(v), err
}

// ReadUVar32 reads an unsigned LEB128 value of at most 5 bytes.
func (in *Input) ReadUVar32() (uint32, error) {
	v, n, err := varint.Decode32(in.data[in.off:])
	if err != nil {
		return 0, fmt.Errorf("read var32 at offset %d: %w", in.off, err)
	}
	in.off += n

	return v, nil
}

// ReadVar32 reads a var32 and reinterprets it as two's complement.
func (in *Input) ReadVar32() (int32, error) {
	v, err := in.ReadUVar32()
	return int32(v), err
}

// ReadUVar64 reads an unsigned LEB128 value of at most 10 bytes.
func (in *Input) ReadUVar64() (uint64, error) {
	v, n, err := varint.Decode64(in.data[in.off:])
	if err != nil {
		return 0, fmt.Errorf("read var64 at offset %d: %w", in.off, err)
	}
	in.off += n

	return v, nil
}

// ReadVar64 reads a var64 and reinterprets it as two's complement.
func (in *Input) ReadVar64() (int64, error) {
	v, err := in.ReadUVar64()
	return int64(v), err
}

// ReadLength reads a var32 length and checks that it lies in 0..maxLen.
func (in *Input) ReadLength(maxLen int) (int, error) {
	return in.readLength("length", maxLen)
}

func (in *Input) readLength(what string, maxLen int) (int, error) {
	v, err := in.ReadVar32()
	if err != nil {
		return 0, err
	}

	if err := errs.CheckRange(what, int64(v), int64(maxLen)); err != nil {
		return 0, err
	}

	return int(v), nil
}

// ReadUTF8 reads a length-prefixed UTF-8 string bounded by Config.MaxUTF8Size.
func (in *Input) ReadUTF8() (string, error) {
	return in.ReadUTF8Max(in.cfg.MaxUTF8Size)
}

// ReadUTF8Max reads a length-prefixed UTF-8 string of at most maxLen bytes.
func (in *Input) ReadUTF8Max(maxLen int) (string, error) {
	n, err := in.readLength("utf8 size", maxLen)
	if err != nil {
		return "", err
	}

	b, err := in.next(n, "utf8 string")
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes at offset %d", errs.ErrInvalidUTF8, n, in.off-n)
	}

	return string(b), nil
}

// ReadUUID reads 16 bytes: the high 64 bits then the low 64 bits, big-endian.
func (in *Input) ReadUUID() (uuid.UUID, error) {
	var id uuid.UUID
	b, err := in.next(len(id), "uuid")
	if err != nil {
		return id, err
	}
	copy(id[:], b)

	return id, nil
}

// ReadFixedBytes reads exactly n bytes into a new slice.
func (in *Input) ReadFixedBytes(n int) ([]byte, error) {
	b, err := in.next(n, "fixed bytes")
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}

// ReadDynBytes reads a length-prefixed byte array bounded by Config.MaxArrayLength.
func (in *Input) ReadDynBytes() ([]byte, error) {
	return in.ReadDynBytesMax(in.cfg.MaxArrayLength)
}

// ReadDynBytesMax reads a length-prefixed byte array of at most maxLen bytes.
func (in *Input) ReadDynBytesMax(maxLen int) ([]byte, error) {
	n, err := in.readLength("array length", maxLen)
	if err != nil {
		return nil, err
	}

	return in.ReadFixedBytes(n)
}
