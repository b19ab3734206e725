package node

import "github.com/wisptrie/art/pkg/arena"

// Node is implemented by every value reachable through a [Ref]: the four
// inner node classes and the leaf. It exposes exactly what a recursive
// Minimum/Maximum walk needs without caring whether the current node is a
// leaf or has children of its own.
type Node[T any] interface {
	// Ref returns a tagged reference to this node.
	Ref() Ref[T]

	// Type returns this node's class.
	Type() Type

	// Minimum returns the leaf reachable by always taking the
	// lowest-keyed child, or itself if this is already a leaf.
	Minimum() *Leaf[T]

	// Maximum returns the leaf reachable by always taking the
	// highest-keyed child, or itself if this is already a leaf.
	Maximum() *Leaf[T]
}

// Inner is implemented by the four inner node classes (never by [Leaf]). It
// is the structural surface the search, insertion, and deletion algorithms
// mutate.
type Inner[T any] interface {
	Node[T]

	// Header returns this node's shared header (child count and prefix).
	Header() *Header

	// Full returns true if this node holds as many children as its class
	// permits.
	Full() bool

	// FindChild returns the child keyed by b, or the empty Ref if absent.
	FindChild(b byte) Ref[T]

	// AddChild installs child under key b. The node must not be Full();
	// callers are responsible for growing it first (see [Inner.Grow]).
	AddChild(b byte, child Ref[T])

	// SetChild overwrites the child already installed under key b, which
	// must be present. Used to write back a child slot after a recursive
	// structural change (split, grow, shrink, or collapse) below it,
	// without touching the child count.
	SetChild(b byte, child Ref[T])

	// RemoveChild uninstalls the child keyed by b, which must be present.
	RemoveChild(b byte)

	// Grow allocates the next larger node class, moves this node's
	// children and header into it, and releases this node.
	Grow(a arena.AllocatorExt) Inner[T]

	// Shrink returns this node unchanged if its child count is still
	// within its class's range; otherwise it allocates the next smaller
	// class, moves children and header into it, releases this node, and
	// returns the replacement. Node4 never shrinks this way: a deletion
	// that would leave it with one child must collapse instead (see the
	// tree package).
	Shrink(a arena.AllocatorExt) Inner[T]

	// Release frees this node's own storage (not its children's).
	Release(a arena.AllocatorExt)
}
