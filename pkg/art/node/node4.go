package node

import (
	"github.com/wisptrie/art/internal/debug"
	"github.com/wisptrie/art/pkg/arena"
)

// Node4 holds up to four children in two parallel arrays, kept sorted
// ascending by key byte.
type Node4[T any] struct {
	Header
	Keys     [4]byte
	Children [4]Ref[T]
}

// NewNode4 allocates an empty Node4.
func NewNode4[T any](a arena.Allocator) *Node4[T] {
	return arena.New(a, Node4[T]{})
}

func (n *Node4[T]) Ref() Ref[T]         { return NewRef[T](TypeNode4, n) }
func (*Node4[T]) Type() Type            { return TypeNode4 }
func (n *Node4[T]) Header() *Header     { return &n.Header }
func (n *Node4[T]) Full() bool          { return n.NumChildren() == 4 }

func (n *Node4[T]) Minimum() *Leaf[T] {
	return n.Children[0].AsNode().Minimum()
}

func (n *Node4[T]) Maximum() *Leaf[T] {
	return n.Children[n.NumChildren()-1].AsNode().Maximum()
}

func (n *Node4[T]) FindChild(b byte) Ref[T] {
	for i := 0; i < n.NumChildren(); i++ {
		if n.Keys[i] == b {
			return n.Children[i]
		}
	}
	return 0
}

// AddChild inserts child at the sorted position for key b. n must not be
// Full().
func (n *Node4[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild on a full Node4")

	count := n.NumChildren()

	i := 0
	for i < count && n.Keys[i] < b {
		i++
	}

	copy(n.Keys[i+1:count+1], n.Keys[i:count])
	copy(n.Children[i+1:count+1], n.Children[i:count])

	n.Keys[i] = b
	n.Children[i] = child

	n.SetNumChildren(count + 1)
}

// SetChild overwrites the child already keyed by b, which must be present.
func (n *Node4[T]) SetChild(b byte, child Ref[T]) {
	for i := 0; i < n.NumChildren(); i++ {
		if n.Keys[i] == b {
			n.Children[i] = child
			return
		}
	}
	debug.Assert(false, "SetChild: key %#x not present", b)
}

func (n *Node4[T]) RemoveChild(b byte) {
	count := n.NumChildren()

	i := 0
	for i < count && n.Keys[i] != b {
		i++
	}
	debug.Assert(i < count, "RemoveChild: key %#x not present", b)

	copy(n.Keys[i:count-1], n.Keys[i+1:count])
	copy(n.Children[i:count-1], n.Children[i+1:count])
	n.Children[count-1] = 0

	n.SetNumChildren(count - 1)
}

// Grow promotes n to a Node16 with the same header and children.
func (n *Node4[T]) Grow(a arena.AllocatorExt) Inner[T] {
	next := NewNode16[T](a)
	next.Header = n.Header

	count := n.NumChildren()
	copy(next.Keys[:count], n.Keys[:count])
	copy(next.Children[:count], n.Children[:count])

	n.Release(a)

	return next
}

// Shrink always returns n: a Node4 never demotes, it collapses (see the tree
// package's deletion logic).
func (n *Node4[T]) Shrink(arena.AllocatorExt) Inner[T] { return n }

func (n *Node4[T]) Release(a arena.AllocatorExt) { arena.Free(a, n) }
