package node

import (
	"github.com/wisptrie/art/internal/debug"
	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/simd"
)

// Node16 holds up to sixteen children in two parallel arrays, kept sorted
// ascending by key byte. Key lookup uses a bit-parallel equality scan across
// the whole key array instead of a byte-at-a-time loop (see package simd).
// The insertion position is not found bit-parallel: it comes from a linear
// scan over the sorted keys (simd.FindInsertPosition).
type Node16[T any] struct {
	Header
	Keys     [16]byte
	Children [16]Ref[T]
}

// NewNode16 allocates an empty Node16.
func NewNode16[T any](a arena.Allocator) *Node16[T] {
	return arena.New(a, Node16[T]{})
}

func (n *Node16[T]) Ref() Ref[T]     { return NewRef[T](TypeNode16, n) }
func (*Node16[T]) Type() Type        { return TypeNode16 }
func (n *Node16[T]) Header() *Header { return &n.Header }
func (n *Node16[T]) Full() bool      { return n.NumChildren() == 16 }

func (n *Node16[T]) Minimum() *Leaf[T] {
	return n.Children[0].AsNode().Minimum()
}

func (n *Node16[T]) Maximum() *Leaf[T] {
	return n.Children[n.NumChildren()-1].AsNode().Maximum()
}

func (n *Node16[T]) FindChild(b byte) Ref[T] {
	i, ok := simd.FindKeyIndex(&n.Keys, n.NumChildren(), b)
	if !ok {
		return 0
	}
	return n.Children[i]
}

// AddChild inserts child at the sorted position for key b. n must not be
// Full().
func (n *Node16[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild on a full Node16")

	count := n.NumChildren()
	i := simd.FindInsertPosition(&n.Keys, count, b)

	copy(n.Keys[i+1:count+1], n.Keys[i:count])
	copy(n.Children[i+1:count+1], n.Children[i:count])

	n.Keys[i] = b
	n.Children[i] = child

	n.SetNumChildren(count + 1)
}

// SetChild overwrites the child already keyed by b, which must be present.
func (n *Node16[T]) SetChild(b byte, child Ref[T]) {
	i, ok := simd.FindKeyIndex(&n.Keys, n.NumChildren(), b)
	debug.Assert(ok, "SetChild: key %#x not present", b)
	n.Children[i] = child
}

func (n *Node16[T]) RemoveChild(b byte) {
	count := n.NumChildren()
	i, ok := simd.FindKeyIndex(&n.Keys, count, b)
	debug.Assert(ok, "RemoveChild: key %#x not present", b)

	copy(n.Keys[i:count-1], n.Keys[i+1:count])
	copy(n.Children[i:count-1], n.Children[i+1:count])
	n.Children[count-1] = 0

	n.SetNumChildren(count - 1)
}

// Grow promotes n to a Node48 with the same header and children.
func (n *Node16[T]) Grow(a arena.AllocatorExt) Inner[T] {
	next := NewNode48[T](a)
	next.Header = n.Header

	count := n.NumChildren()
	for i := 0; i < count; i++ {
		next.Index[n.Keys[i]] = uint8(i + 1)
		next.Children[i] = n.Children[i]
	}

	n.Release(a)

	return next
}

// Shrink demotes n to a Node4 once its child count falls to the Node16
// class's lower bound (invariant range [5,16]).
func (n *Node16[T]) Shrink(a arena.AllocatorExt) Inner[T] {
	if n.NumChildren() > 4 {
		return n
	}

	next := NewNode4[T](a)
	next.Header = n.Header

	count := n.NumChildren()
	copy(next.Keys[:count], n.Keys[:count])
	copy(next.Children[:count], n.Children[:count])

	n.Release(a)

	return next
}

func (n *Node16[T]) Release(a arena.AllocatorExt) { arena.Free(a, n) }
