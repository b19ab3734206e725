package tree

import "github.com/wisptrie/art/pkg/art/node"

// frame is one level of an iterator's descent stack: the inner node being
// visited, and the position of the next child to examine.
//
// Node4/Node16 expose their children compactly at indices
// [0, NumChildren()), already sorted by key byte. Node48/Node256 are walked
// over the full [0,256) byte range, skipping empty entries, since that is
// how each recovers key-byte order from its representation.
type frame[T any] struct {
	lo, hi int
	at     func(i int) node.Ref[T]
	fwd    int
	bwd    int
}

func newFrame[T any](inner node.Inner[T]) *frame[T] {
	lo, hi, at := childSeq(inner)
	return &frame[T]{lo: lo, hi: hi, at: at, fwd: lo, bwd: hi - 1}
}

func childSeq[T any](inner node.Inner[T]) (lo, hi int, at func(i int) node.Ref[T]) {
	switch n := inner.(type) {
	case *node.Node4[T]:
		return 0, n.NumChildren(), func(i int) node.Ref[T] { return n.Children[i] }
	case *node.Node16[T]:
		return 0, n.NumChildren(), func(i int) node.Ref[T] { return n.Children[i] }
	case *node.Node48[T]:
		return 0, 256, func(i int) node.Ref[T] {
			idx := n.Index[i]
			if idx == 0 {
				return 0
			}
			return n.Children[idx-1]
		}
	case *node.Node256[T]:
		return 0, 256, func(i int) node.Ref[T] { return n.Children[i] }
	default:
		panic("art: unknown inner node type")
	}
}

// remaining reports how many more children this frame has yet to yield in
// the given direction, without materializing them — used for the
// iterator's size hint.
func (f *frame[T]) remainingForward() int {
	n := 0
	for i := f.fwd; i < f.hi; i++ {
		if !f.at(i).Empty() {
			n++
		}
	}
	return n
}

func (f *frame[T]) remainingBackward() int {
	n := 0
	for i := f.lo; i <= f.bwd; i++ {
		if !f.at(i).Empty() {
			n++
		}
	}
	return n
}

// Iterator walks every leaf reachable from a root in ascending key-byte
// order. It is finite and non-restartable: once exhausted, it stays
// exhausted. While an Iterator is alive, the trie it walks must not be
// mutated.
type Iterator[T any] struct {
	root    node.Ref[T]
	started bool
	single  *node.Leaf[T]
	stack   []*frame[T]
}

// NewIterator returns a forward iterator over root.
func NewIterator[T any](root node.Ref[T]) *Iterator[T] {
	return &Iterator[T]{root: root}
}

func (it *Iterator[T]) init() {
	it.started = true
	switch {
	case it.root.Empty():
	case it.root.IsLeaf():
		it.single = it.root.AsLeaf()
	default:
		it.stack = append(it.stack, newFrame(it.root.AsInner()))
	}
}

// Next returns the next leaf in ascending order, or false if exhausted.
func (it *Iterator[T]) Next() (*node.Leaf[T], bool) {
	if !it.started {
		it.init()
	}

	if it.single != nil {
		l := it.single
		it.single = nil
		return l, true
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if top.fwd >= top.hi {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		child := top.at(top.fwd)
		top.fwd++
		if child.Empty() {
			continue
		}
		if child.IsLeaf() {
			return child.AsLeaf(), true
		}
		it.stack = append(it.stack, newFrame(child.AsInner()))
	}

	return nil, false
}

// Remaining returns a lower bound on the number of leaves left to yield,
// summing each live frame's remaining forward count. It undercounts nodes
// not yet pushed onto the stack, so it is a size hint, not an exact count.
func (it *Iterator[T]) Remaining() int {
	n := 0
	if it.single != nil {
		n++
	}
	for _, f := range it.stack {
		n += f.remainingForward()
	}
	return n
}

// ReverseIterator walks every leaf reachable from a root in descending
// key-byte order; it is the mirror of [Iterator].
type ReverseIterator[T any] struct {
	root    node.Ref[T]
	started bool
	single  *node.Leaf[T]
	stack   []*frame[T]
}

// NewReverseIterator returns a reverse iterator over root.
func NewReverseIterator[T any](root node.Ref[T]) *ReverseIterator[T] {
	return &ReverseIterator[T]{root: root}
}

func (it *ReverseIterator[T]) init() {
	it.started = true
	switch {
	case it.root.Empty():
	case it.root.IsLeaf():
		it.single = it.root.AsLeaf()
	default:
		it.stack = append(it.stack, newFrame(it.root.AsInner()))
	}
}

// Next returns the next leaf in descending order, or false if exhausted.
func (it *ReverseIterator[T]) Next() (*node.Leaf[T], bool) {
	if !it.started {
		it.init()
	}

	if it.single != nil {
		l := it.single
		it.single = nil
		return l, true
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if top.bwd < top.lo {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		child := top.at(top.bwd)
		top.bwd--
		if child.Empty() {
			continue
		}
		if child.IsLeaf() {
			return child.AsLeaf(), true
		}
		it.stack = append(it.stack, newFrame(child.AsInner()))
	}

	return nil, false
}

// Remaining is the reverse-direction analog of [Iterator.Remaining].
func (it *ReverseIterator[T]) Remaining() int {
	n := 0
	if it.single != nil {
		n++
	}
	for _, f := range it.stack {
		n += f.remainingBackward()
	}
	return n
}
