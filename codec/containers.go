package codec

import (
	"iter"
	"maps"
	"slices"

	"github.com/arloliu/binstd/wire"
)

// FixedArray encodes exactly n elements with no length prefix.
// Encoding a slice of another length fails before anything is written.
func FixedArray[T any](c Codec[T], n int) Codec[[]T] {
	return Of(
		EncodeFunc[[]T](func(out *wire.Output, v []T) error {
			return wire.WriteFixedSlice(out, v, n, writer(c))
		}),
		DecodeFunc[[]T](func(in *wire.Input) ([]T, error) {
			return wire.ReadFixedSlice(in, n, reader(c))
		}),
	)
}

// DynArray encodes a var32 element count followed by the elements.
// Decoding is bounded by wire.Config.MaxArrayLength.
func DynArray[T any](c Codec[T]) Codec[[]T] {
	return Of(
		EncodeFunc[[]T](func(out *wire.Output, v []T) error {
			return wire.WriteDynSlice(out, v, writer(c))
		}),
		DecodeFunc[[]T](func(in *wire.Input) ([]T, error) {
			return wire.ReadDynSlice(in, reader(c))
		}),
	)
}

// DynArrayMax is DynArray with an explicit ceiling, checked on both sides.
func DynArrayMax[T any](c Codec[T], maxLen int) Codec[[]T] {
	return Of(
		EncodeFunc[[]T](func(out *wire.Output, v []T) error {
			if err := checkMax("array length", len(v), maxLen); err != nil {
				return err
			}

			return wire.WriteDynSlice(out, v, writer(c))
		}),
		DecodeFunc[[]T](func(in *wire.Input) ([]T, error) {
			return wire.ReadDynSliceMax(in, maxLen, reader(c))
		}),
	)
}

// FixedCollection encodes exactly n elements of a collection with no length
// prefix. Decoding fills a collection created by newC.
func FixedCollection[T any, C wire.Collection[T]](c Codec[T], newC func(size int) C, n int) Codec[C] {
	return Of(
		EncodeFunc[C](func(out *wire.Output, v C) error {
			return wire.WriteFixedCollection(out, v, n, writer(c))
		}),
		DecodeFunc[C](func(in *wire.Input) (C, error) {
			return wire.ReadFixedCollection(in, n, newC, reader(c))
		}),
	)
}

// DynCollection encodes a var32 element count followed by the elements in
// iteration order. Decoding is bounded by wire.Config.MaxArrayLength.
func DynCollection[T any, C wire.Collection[T]](c Codec[T], newC func(size int) C) Codec[C] {
	return Of(
		EncodeFunc[C](func(out *wire.Output, v C) error {
			return wire.WriteDynCollection(out, v, writer(c))
		}),
		DecodeFunc[C](func(in *wire.Input) (C, error) {
			return wire.ReadDynCollection(in, newC, reader(c))
		}),
	)
}

// DynCollectionMax is DynCollection with an explicit ceiling, checked on both sides.
func DynCollectionMax[T any, C wire.Collection[T]](c Codec[T], newC func(size int) C, maxLen int) Codec[C] {
	return Of(
		EncodeFunc[C](func(out *wire.Output, v C) error {
			if err := checkMax("collection size", v.Len(), maxLen); err != nil {
				return err
			}

			return wire.WriteDynCollection(out, v, writer(c))
		}),
		DecodeFunc[C](func(in *wire.Input) (C, error) {
			return wire.ReadDynCollectionMax(in, maxLen, newC, reader(c))
		}),
	)
}

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

var _ wire.Collection[int] = Set[int]{}

// NewSet creates an empty set with room for size elements.
func NewSet[T comparable](size int) Set[T] {
	return make(Set[T], size)
}

// SetOf creates a set holding values.
func SetOf[T comparable](values ...T) Set[T] {
	s := NewSet[T](len(values))
	for _, v := range values {
		s.Add(v)
	}

	return s
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// DynSet is DynCollection over a Set.
func DynSet[T comparable](c Codec[T]) Codec[Set[T]] {
	return DynCollection(c, NewSet[T])
}

// OrderedMap is a wire.Map that iterates in insertion order.
//
// Putting an existing key replaces its value and keeps its position. The zero
// value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

var _ wire.Map[int, string] = (*OrderedMap[int, string])(nil)

// NewOrderedMap creates an empty map with room for size entries.
func NewOrderedMap[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index:  make(map[K]int, size),
		keys:   make([]K, 0, size),
		values: make([]V, 0, size),
	}
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) Put(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return
	}

	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}

	return m.values[i], true
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return slices.Values(m.keys)
}

// FixedMapOf encodes exactly n key/value pairs with no length prefix, in the
// order m.All yields them. Decoding puts pairs into newM(n) in stream order.
func FixedMapOf[K comparable, V any, M wire.Map[K, V]](k Codec[K], v Codec[V], newM func(size int) M, n int) Codec[M] {
	return Of(
		EncodeFunc[M](func(out *wire.Output, m M) error {
			return wire.WriteFixedMapOf(out, m, n, writer(k), writer(v))
		}),
		DecodeFunc[M](func(in *wire.Input) (M, error) {
			return wire.ReadFixedMapOf(in, n, newM, reader(k), reader(v))
		}),
	)
}

// DynMapOf encodes a var32 entry count followed by key/value pairs in m.All
// order. Decoding is bounded by wire.Config.MaxMapSize.
//
// With NewOrderedMap the pair order survives a round trip and equal maps
// encode to equal bytes.
func DynMapOf[K comparable, V any, M wire.Map[K, V]](k Codec[K], v Codec[V], newM func(size int) M) Codec[M] {
	return Of(
		EncodeFunc[M](func(out *wire.Output, m M) error {
			return wire.WriteDynMapOf(out, m, writer(k), writer(v))
		}),
		DecodeFunc[M](func(in *wire.Input) (M, error) {
			return wire.ReadDynMapOf(in, newM, reader(k), reader(v))
		}),
	)
}

// DynMapMaxOf is DynMapOf with an explicit ceiling, checked on both sides.
func DynMapMaxOf[K comparable, V any, M wire.Map[K, V]](k Codec[K], v Codec[V], newM func(size int) M, maxLen int) Codec[M] {
	return Of(
		EncodeFunc[M](func(out *wire.Output, m M) error {
			if err := checkMax("map size", m.Len(), maxLen); err != nil {
				return err
			}

			return wire.WriteDynMapOf(out, m, writer(k), writer(v))
		}),
		DecodeFunc[M](func(in *wire.Input) (M, error) {
			return wire.ReadDynMapMaxOf(in, maxLen, newM, reader(k), reader(v))
		}),
	)
}

// FixedMap is FixedMapOf over a built-in map.
// Pair order follows map iteration, so equal maps may encode differently.
func FixedMap[K comparable, V any](k Codec[K], v Codec[V], n int) Codec[map[K]V] {
	return Of(
		EncodeFunc[map[K]V](func(out *wire.Output, m map[K]V) error {
			return wire.WriteFixedMap(out, m, n, writer(k), writer(v))
		}),
		DecodeFunc[map[K]V](func(in *wire.Input) (map[K]V, error) {
			return wire.ReadFixedMap(in, n, reader(k), reader(v))
		}),
	)
}

// DynMap is DynMapOf over a built-in map.
// Pair order follows map iteration, so equal maps may encode differently.
func DynMap[K comparable, V any](k Codec[K], v Codec[V]) Codec[map[K]V] {
	return Of(
		EncodeFunc[map[K]V](func(out *wire.Output, m map[K]V) error {
			return wire.WriteDynMap(out, m, writer(k), writer(v))
		}),
		DecodeFunc[map[K]V](func(in *wire.Input) (map[K]V, error) {
			return wire.ReadDynMap(in, reader(k), reader(v))
		}),
	)
}

// DynMapMax is DynMapMaxOf over a built-in map.
func DynMapMax[K comparable, V any](k Codec[K], v Codec[V], maxLen int) Codec[map[K]V] {
	return Of(
		EncodeFunc[map[K]V](func(out *wire.Output, m map[K]V) error {
			if err := checkMax("map size", len(m), maxLen); err != nil {
				return err
			}

			return wire.WriteDynMap(out, m, writer(k), writer(v))
		}),
		DecodeFunc[map[K]V](func(in *wire.Input) (map[K]V, error) {
			return wire.ReadDynMapMax(in, maxLen, reader(k), reader(v))
		}),
	)
}
