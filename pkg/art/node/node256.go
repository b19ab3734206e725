package node

import (
	"github.com/wisptrie/art/internal/debug"
	"github.com/wisptrie/art/pkg/arena"
)

// Node256 maps a key byte directly to a child through a full 256-entry
// table; empty slots hold the zero (empty) [Ref].
type Node256[T any] struct {
	Header
	Children [256]Ref[T]
}

// NewNode256 allocates an empty Node256.
func NewNode256[T any](a arena.Allocator) *Node256[T] {
	return arena.New(a, Node256[T]{})
}

func (n *Node256[T]) Ref() Ref[T]     { return NewRef[T](TypeNode256, n) }
func (*Node256[T]) Type() Type        { return TypeNode256 }
func (n *Node256[T]) Header() *Header { return &n.Header }
func (n *Node256[T]) Full() bool      { return n.NumChildren() == 256 }

func (n *Node256[T]) Minimum() *Leaf[T] {
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			return n.Children[b].AsNode().Minimum()
		}
	}
	panic("art: Minimum on empty Node256")
}

func (n *Node256[T]) Maximum() *Leaf[T] {
	for b := 255; b >= 0; b-- {
		if !n.Children[b].Empty() {
			return n.Children[b].AsNode().Maximum()
		}
	}
	panic("art: Maximum on empty Node256")
}

func (n *Node256[T]) FindChild(b byte) Ref[T] {
	return n.Children[b]
}

func (n *Node256[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full() || !n.Children[b].Empty(), "AddChild on a full Node256")

	if n.Children[b].Empty() {
		n.SetNumChildren(n.NumChildren() + 1)
	}
	n.Children[b] = child
}

// SetChild overwrites the child already keyed by b, which must be present.
func (n *Node256[T]) SetChild(b byte, child Ref[T]) {
	debug.Assert(!n.Children[b].Empty(), "SetChild: key %#x not present", b)
	n.Children[b] = child
}

func (n *Node256[T]) RemoveChild(b byte) {
	debug.Assert(!n.Children[b].Empty(), "RemoveChild: key %#x not present", b)

	n.Children[b] = 0
	n.SetNumChildren(n.NumChildren() - 1)
}

// Grow never runs: Node256 is the largest class.
func (n *Node256[T]) Grow(arena.AllocatorExt) Inner[T] {
	panic("art: Node256 cannot grow further")
}

// Shrink demotes n to a Node48 once its child count falls to the Node256
// class's lower bound (invariant range [49,256]).
func (n *Node256[T]) Shrink(a arena.AllocatorExt) Inner[T] {
	if n.NumChildren() > 48 {
		return n
	}

	next := NewNode48[T](a)
	next.Header = n.Header

	k := 0
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			next.Index[b] = uint8(k + 1)
			next.Children[k] = n.Children[b]
			k++
		}
	}

	n.Release(a)

	return next
}

func (n *Node256[T]) Release(a arena.AllocatorExt) { arena.Free(a, n) }
