package node

import (
	"github.com/wisptrie/art/internal/debug"
	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/simd"
)

// Node48 maps a key byte to a child through a dense 256-entry index table of
// 1-based slot numbers (0 is the "empty" sentinel), with the actual
// pointers held compactly in the first NumChildren() entries of Children.
// Ordering by key byte is not maintained in Children; it is recovered by
// scanning Index.
type Node48[T any] struct {
	Header
	Index    [256]uint8
	Children [48]Ref[T]
}

// NewNode48 allocates an empty Node48.
func NewNode48[T any](a arena.Allocator) *Node48[T] {
	return arena.New(a, Node48[T]{})
}

func (n *Node48[T]) Ref() Ref[T]     { return NewRef[T](TypeNode48, n) }
func (*Node48[T]) Type() Type        { return TypeNode48 }
func (n *Node48[T]) Header() *Header { return &n.Header }
func (n *Node48[T]) Full() bool      { return n.NumChildren() == 48 }

func (n *Node48[T]) Minimum() *Leaf[T] {
	b, ok := simd.FindNonZeroIndex(&n.Index, 0, 256)
	debug.Assert(ok, "Minimum on empty Node48")
	return n.Children[n.Index[b]-1].AsNode().Minimum()
}

func (n *Node48[T]) Maximum() *Leaf[T] {
	b, ok := simd.FindLastNonZeroIndex(&n.Index, 0, 256)
	debug.Assert(ok, "Maximum on empty Node48")
	return n.Children[n.Index[b]-1].AsNode().Maximum()
}

func (n *Node48[T]) FindChild(b byte) Ref[T] {
	i := n.Index[b]
	if i == 0 {
		return 0
	}
	return n.Children[i-1]
}

// AddChild installs child at the next free compact slot. n must not be
// Full().
func (n *Node48[T]) AddChild(b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild on a full Node48")

	if slot := n.Index[b]; slot != 0 {
		n.Children[slot-1] = child
		return
	}

	count := n.NumChildren()
	n.Index[b] = uint8(count + 1)
	n.Children[count] = child
	n.SetNumChildren(count + 1)
}

// SetChild overwrites the child already keyed by b, which must be present.
func (n *Node48[T]) SetChild(b byte, child Ref[T]) {
	slot := n.Index[b]
	debug.Assert(slot != 0, "SetChild: key %#x not present", b)
	n.Children[slot-1] = child
}

// RemoveChild uninstalls the child keyed by b, swapping the last compact
// slot into its place to keep Children dense (invariant 4).
func (n *Node48[T]) RemoveChild(b byte) {
	slot := n.Index[b]
	debug.Assert(slot != 0, "RemoveChild: key %#x not present", b)

	count := n.NumChildren()
	last := count - 1

	if int(slot)-1 != last {
		n.Children[slot-1] = n.Children[last]

		b2, ok := simd.FindByteWithIndexValue(&n.Index, uint8(last+1))
		debug.Assert(ok, "Node48 index/children out of sync")
		n.Index[b2] = slot
	}

	n.Children[last] = 0
	n.Index[b] = 0
	n.SetNumChildren(count - 1)
}

// Grow promotes n to a Node256 with the same header and children.
func (n *Node48[T]) Grow(a arena.AllocatorExt) Inner[T] {
	next := NewNode256[T](a)
	next.Header = n.Header

	for b := 0; b < 256; b++ {
		if slot := n.Index[byte(b)]; slot != 0 {
			next.Children[b] = n.Children[slot-1]
		}
	}

	n.Release(a)

	return next
}

// Shrink demotes n to a Node16 once its child count falls to the Node48
// class's lower bound (invariant range [17,48]).
func (n *Node48[T]) Shrink(a arena.AllocatorExt) Inner[T] {
	if n.NumChildren() > 16 {
		return n
	}

	next := NewNode16[T](a)
	next.Header = n.Header

	k := 0
	for b := 0; b < 256; b++ {
		if slot := n.Index[byte(b)]; slot != 0 {
			next.Keys[k] = byte(b)
			next.Children[k] = n.Children[slot-1]
			k++
		}
	}

	n.Release(a)

	return next
}

func (n *Node48[T]) Release(a arena.AllocatorExt) { arena.Free(a, n) }
