package wire

import (
	"iter"
	"maps"

	"github.com/arloliu/binstd/errs"
)

// ReadFunc decodes one value from an Input.
type ReadFunc[T any] func(in *Input) (T, error)

// WriteFunc encodes one value to an Output.
type WriteFunc[T any] func(out *Output, v T) error

// Collection is a mutable container that can be filled during decoding and
// iterated during encoding.
type Collection[T any] interface {
	Len() int
	All() iter.Seq[T]
	Add(v T)
}

// Map is a mutable key/value container that can be filled during decoding and
// iterated during encoding. All decides the pair order on the wire; decoding
// calls Put in stream order.
type Map[K comparable, V any] interface {
	Len() int
	All() iter.Seq2[K, V]
	Put(k K, v V)
}

// ReadNullable reads a presence tag and, when present, the value.
//
// Returns:
//   - T: The value, or the zero value when absent
//   - bool: Whether the value was present
//   - error: errs.ErrInvalidBool for a tag other than 0x00/0x01, or the element error
func ReadNullable[T any](in *Input, read ReadFunc[T]) (T, bool, error) {
	var zero T

	present, err := in.ReadBool()
	if err != nil || !present {
		return zero, false, err
	}

	v, err := read(in)
	if err != nil {
		return zero, false, err
	}

	return v, true, nil
}

// WriteNullable writes a presence tag followed by v when present.
func WriteNullable[T any](out *Output, v T, present bool, write WriteFunc[T]) error {
	out.WriteBool(present)
	if !present {
		return nil
	}

	return write(out, v)
}

// preallocation hint that a hostile length cannot inflate past the input size
func capHint(n int, in *Input) int {
	return min(n, in.Remaining())
}

// ReadFixedSlice reads exactly n elements with no length prefix.
func ReadFixedSlice[T any](in *Input, n int, read ReadFunc[T]) ([]T, error) {
	if err := errs.CheckRange("array length", int64(n), MaxLength); err != nil {
		return nil, err
	}

	s := make([]T, 0, capHint(n, in))
	for range n {
		v, err := read(in)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}

	return s, nil
}

// ReadDynSlice reads a length-prefixed slice bounded by Config.MaxArrayLength.
func ReadDynSlice[T any](in *Input, read ReadFunc[T]) ([]T, error) {
	return ReadDynSliceMax(in, in.cfg.MaxArrayLength, read)
}

// ReadDynSliceMax reads a length-prefixed slice of at most maxLen elements.
// The length is checked before any element is read.
func ReadDynSliceMax[T any](in *Input, maxLen int, read ReadFunc[T]) ([]T, error) {
	n, err := in.readLength("array length", maxLen)
	if err != nil {
		return nil, err
	}

	return ReadFixedSlice(in, n, read)
}

// WriteFixedSlice writes the elements of s with no length prefix.
//
// Returns:
//   - error: *errs.RangeError if len(s) != n, before anything is written
func WriteFixedSlice[T any](out *Output, s []T, n int, write WriteFunc[T]) error {
	if len(s) != n {
		return errs.NewMismatchError("array length", int64(n), int64(len(s)))
	}

	return writeElements(out, s, write)
}

// WriteDynSlice writes len(s) as a var32 followed by the elements.
func WriteDynSlice[T any](out *Output, s []T, write WriteFunc[T]) error {
	if err := out.WriteLength(len(s)); err != nil {
		return err
	}

	return writeElements(out, s, write)
}

func writeElements[T any](out *Output, s []T, write WriteFunc[T]) error {
	for _, v := range s {
		if err := write(out, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadFixedCollection reads exactly n elements into a collection created by newC.
// newC receives n as a capacity hint.
func ReadFixedCollection[T any, C Collection[T]](in *Input, n int, newC func(size int) C, read ReadFunc[T]) (C, error) {
	if err := errs.CheckRange("collection size", int64(n), MaxLength); err != nil {
		var zero C
		return zero, err
	}

	c := newC(capHint(n, in))
	for range n {
		v, err := read(in)
		if err != nil {
			var zero C
			return zero, err
		}
		c.Add(v)
	}

	return c, nil
}

// ReadDynCollection reads a length-prefixed collection bounded by Config.MaxArrayLength.
func ReadDynCollection[T any, C Collection[T]](in *Input, newC func(size int) C, read ReadFunc[T]) (C, error) {
	return ReadDynCollectionMax(in, in.cfg.MaxArrayLength, newC, read)
}

// ReadDynCollectionMax reads a length-prefixed collection of at most maxLen elements.
func ReadDynCollectionMax[T any, C Collection[T]](in *Input, maxLen int, newC func(size int) C, read ReadFunc[T]) (C, error) {
	n, err := in.readLength("collection size", maxLen)
	if err != nil {
		var zero C
		return zero, err
	}

	return ReadFixedCollection(in, n, newC, read)
}

// WriteFixedCollection writes the elements of c with no length prefix.
//
// Returns:
//   - error: *errs.RangeError if c.Len() != n, before anything is written
func WriteFixedCollection[T any, C Collection[T]](out *Output, c C, n int, write WriteFunc[T]) error {
	if c.Len() != n {
		return errs.NewMismatchError("collection size", int64(n), int64(c.Len()))
	}

	return writeSeq(out, c.All(), write)
}

// WriteDynCollection writes c.Len() as a var32 followed by the elements.
func WriteDynCollection[T any, C Collection[T]](out *Output, c C, write WriteFunc[T]) error {
	if err := out.WriteLength(c.Len()); err != nil {
		return err
	}

	return writeSeq(out, c.All(), write)
}

func writeSeq[T any](out *Output, seq iter.Seq[T], write WriteFunc[T]) error {
	for v := range seq {
		if err := write(out, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadFixedMapOf reads exactly n key/value pairs, key first, into a map created
// by newM. Pairs are put in stream order; newM receives n as a capacity hint.
func ReadFixedMapOf[K comparable, V any, M Map[K, V]](in *Input, n int, newM func(size int) M, readKey ReadFunc[K], readValue ReadFunc[V]) (M, error) {
	var zero M
	if err := errs.CheckRange("map size", int64(n), MaxLength); err != nil {
		return zero, err
	}

	m := newM(capHint(n, in))
	for range n {
		k, err := readKey(in)
		if err != nil {
			return zero, err
		}

		v, err := readValue(in)
		if err != nil {
			return zero, err
		}
		m.Put(k, v)
	}

	return m, nil
}

// ReadDynMapOf reads a length-prefixed map bounded by Config.MaxMapSize.
func ReadDynMapOf[K comparable, V any, M Map[K, V]](in *Input, newM func(size int) M, readKey ReadFunc[K], readValue ReadFunc[V]) (M, error) {
	return ReadDynMapMaxOf(in, in.cfg.MaxMapSize, newM, readKey, readValue)
}

// ReadDynMapMaxOf reads a length-prefixed map of at most maxLen entries.
// The entry count is checked before any pair is read.
func ReadDynMapMaxOf[K comparable, V any, M Map[K, V]](in *Input, maxLen int, newM func(size int) M, readKey ReadFunc[K], readValue ReadFunc[V]) (M, error) {
	n, err := in.readLength("map size", maxLen)
	if err != nil {
		var zero M
		return zero, err
	}

	return ReadFixedMapOf(in, n, newM, readKey, readValue)
}

// WriteFixedMapOf writes the pairs of m in m.All order with no length prefix.
//
// Returns:
//   - error: *errs.RangeError if m.Len() != n, before anything is written
func WriteFixedMapOf[K comparable, V any, M Map[K, V]](out *Output, m M, n int, writeKey WriteFunc[K], writeValue WriteFunc[V]) error {
	if m.Len() != n {
		return errs.NewMismatchError("map size", int64(n), int64(m.Len()))
	}

	return writePairs(out, m.All(), writeKey, writeValue)
}

// WriteDynMapOf writes m.Len() as a var32 followed by the pairs in m.All order.
func WriteDynMapOf[K comparable, V any, M Map[K, V]](out *Output, m M, writeKey WriteFunc[K], writeValue WriteFunc[V]) error {
	if err := out.WriteLength(m.Len()); err != nil {
		return err
	}

	return writePairs(out, m.All(), writeKey, writeValue)
}

func writePairs[K, V any](out *Output, pairs iter.Seq2[K, V], writeKey WriteFunc[K], writeValue WriteFunc[V]) error {
	for k, v := range pairs {
		if err := writeKey(out, k); err != nil {
			return err
		}

		if err := writeValue(out, v); err != nil {
			return err
		}
	}

	return nil
}

// goMap adapts a built-in map to Map.
type goMap[K comparable, V any] map[K]V

func newGoMap[K comparable, V any](size int) goMap[K, V] {
	return make(goMap[K, V], size)
}

func (m goMap[K, V]) Len() int             { return len(m) }
func (m goMap[K, V]) All() iter.Seq2[K, V] { return maps.All(m) }
func (m goMap[K, V]) Put(k K, v V)         { m[k] = v }

// ReadFixedMap is ReadFixedMapOf into a built-in map.
// A repeated key overwrites the earlier value.
func ReadFixedMap[K comparable, V any](in *Input, n int, readKey ReadFunc[K], readValue ReadFunc[V]) (map[K]V, error) {
	m, err := ReadFixedMapOf(in, n, newGoMap[K, V], readKey, readValue)
	return m, err
}

// ReadDynMap is ReadDynMapOf into a built-in map.
func ReadDynMap[K comparable, V any](in *Input, readKey ReadFunc[K], readValue ReadFunc[V]) (map[K]V, error) {
	m, err := ReadDynMapOf(in, newGoMap[K, V], readKey, readValue)
	return m, err
}

// ReadDynMapMax is ReadDynMapMaxOf into a built-in map.
func ReadDynMapMax[K comparable, V any](in *Input, maxLen int, readKey ReadFunc[K], readValue ReadFunc[V]) (map[K]V, error) {
	m, err := ReadDynMapMaxOf(in, maxLen, newGoMap[K, V], readKey, readValue)
	return m, err
}

// WriteFixedMap writes the pairs of m with no length prefix.
// Pair order follows map iteration and is not stable between calls.
func WriteFixedMap[K comparable, V any](out *Output, m map[K]V, n int, writeKey WriteFunc[K], writeValue WriteFunc[V]) error {
	return WriteFixedMapOf(out, goMap[K, V](m), n, writeKey, writeValue)
}

// WriteDynMap writes len(m) as a var32 followed by the pairs.
// Pair order follows map iteration and is not stable between calls.
func WriteDynMap[K comparable, V any](out *Output, m map[K]V, writeKey WriteFunc[K], writeValue WriteFunc[V]) error {
	return WriteDynMapOf(out, goMap[K, V](m), writeKey, writeValue)
}
