// Package codec provides typed, composable encoder/decoder pairs over the wire
// cursors.
//
// A Codec[T] converts values of T to and from their wire representation. Codecs
// hold no mutable state, so a single codec value can be shared by any number of
// goroutines. Complex codecs are built from primitives with free functions:
//
//	type Player struct {
//		ID    uuid.UUID
//		Name  string
//		Score int32
//	}
//
//	var PlayerCodec = codec.Record(
//		codec.Field(codec.UUID, func(p Player) uuid.UUID { return p.ID }, func(p *Player, v uuid.UUID) { p.ID = v }),
//		codec.Field(codec.UTF8, func(p Player) string { return p.Name }, func(p *Player, v string) { p.Name = v }),
//		codec.Field(codec.Var32, func(p Player) int32 { return p.Score }, func(p *Player, v int32) { p.Score = v }),
//	)
//
//	var Roster = codec.DynArray(PlayerCodec)
//
// # Round trip
//
// For every value v accepted by Encode, Decode of the produced bytes yields a
// value equal to v. Floating point values round-trip bit-for-bit, so a NaN is
// decoded with its original payload even though it compares unequal.
//
// # Failure
//
// Encode and Decode abort at the first error. An encode that fails because a
// length does not match fails before any byte of that value is written; other
// failures may leave a partially written Output, which the caller discards.
// Decoding never reads past a size ceiling: dynamic lengths are checked against
// the Input's wire.Config before any element is decoded.
package codec

import (
	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/wire"
)

// Encoder writes values of T to an Output.
type Encoder[T any] interface {
	Encode(out *wire.Output, v T) error
}

// Decoder reads values of T from an Input.
type Decoder[T any] interface {
	Decode(in *wire.Input) (T, error)
}

// Codec is an Encoder and a Decoder for the same type.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// EncodeFunc adapts a function to the Encoder interface.
type EncodeFunc[T any] func(out *wire.Output, v T) error

func (f EncodeFunc[T]) Encode(out *wire.Output, v T) error {
	return f(out, v)
}

// DecodeFunc adapts a function to the Decoder interface.
type DecodeFunc[T any] func(in *wire.Input) (T, error)

func (f DecodeFunc[T]) Decode(in *wire.Input) (T, error) {
	return f(in)
}

type pair[T any] struct {
	enc Encoder[T]
	dec Decoder[T]
}

func (p pair[T]) Encode(out *wire.Output, v T) error {
	return p.enc.Encode(out, v)
}

func (p pair[T]) Decode(in *wire.Input) (T, error) {
	return p.dec.Decode(in)
}

// Of combines an independently supplied encoder and decoder into a Codec.
//
// Example:
//
//	var Celsius = codec.Of(
//		codec.EncodeFunc[Temp](func(out *wire.Output, t Temp) error { out.WriteF32(float32(t)); return nil }),
//		codec.DecodeFunc[Temp](func(in *wire.Input) (Temp, error) { v, err := in.ReadF32(); return Temp(v), err }),
//	)
func Of[T any](enc Encoder[T], dec Decoder[T]) Codec[T] {
	return pair[T]{enc: enc, dec: dec}
}

type instanceCodec[T comparable] struct {
	instance T
}

// OfInstance returns a codec for a singleton value.
//
// Decode consumes no bytes and returns instance. Encode writes nothing and fails
// with *errs.IdentityError unless the value == instance; for pointer types that
// is pointer identity.
func OfInstance[T comparable](instance T) Codec[T] {
	return instanceCodec[T]{instance: instance}
}

func (c instanceCodec[T]) Encode(_ *wire.Output, v T) error {
	if v != c.instance {
		return &errs.IdentityError{Value: v}
	}

	return nil
}

func (c instanceCodec[T]) Decode(_ *wire.Input) (T, error) {
	return c.instance, nil
}

func reader[T any](c Decoder[T]) wire.ReadFunc[T] {
	return c.Decode
}

func writer[T any](c Encoder[T]) wire.WriteFunc[T] {
	return c.Encode
}
