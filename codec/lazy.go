package codec

import (
	"sync"

	"github.com/arloliu/binstd/wire"
)

// Lazy defers building a codec until its first use, which lets a codec refer
// to itself:
//
//	type Node struct {
//		Value    int32
//		Children []Node
//	}
//
//	var NodeCodec codec.Codec[Node]
//
//	func init() {
//		NodeCodec = codec.Record(
//			codec.Field(codec.Var32, func(n Node) int32 { return n.Value }, func(n *Node, v int32) { n.Value = v }),
//			codec.Field(codec.DynArray(codec.Lazy(func() codec.Codec[Node] { return NodeCodec })),
//				func(n Node) []Node { return n.Children }, func(n *Node, v []Node) { n.Children = v }),
//		)
//	}
//
// Nesting depth is not bounded.
func Lazy[T any](build func() Codec[T]) Codec[T] {
	get := sync.OnceValue(build)

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			return get().Encode(out, v)
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			return get().Decode(in)
		}),
	)
}
