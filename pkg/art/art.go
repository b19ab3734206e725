// Package art is the outer surface over the adaptive radix trie engine in
// [node] and [tree]: a generic [Tree] that owns a root [node.Ref], tracks its
// own size, and exposes the four core operations (point lookup, ordered
// iteration, insert-with-replace, delete) plus a small set of convenience
// queries (Len, Minimum/Maximum, prefix-restricted iteration) that round out
// a map-like collection built on top of them.
//
// Tree is not safe for concurrent use. Readers and an iterator may run
// concurrently with each other, but none may run while a mutation
// (Insert/Delete) is in progress, and no iterator may outlive a mutation
// that happens while it is alive.
package art

import (
	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
	"github.com/wisptrie/art/pkg/art/tree"
)

// InsertOutcome distinguishes the three ways [Tree.Insert] can conclude, per
// the core's §6 contract: a fresh key accepted, an existing key's value
// replaced, or a rejected prefix-conflicting key.
type InsertOutcome uint8

const (
	Inserted InsertOutcome = iota
	Replaced
	PrefixConflict
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "Inserted"
	case Replaced:
		return "Replaced"
	case PrefixConflict:
		return "PrefixConflict"
	default:
		return "Unknown"
	}
}

// Tree is an Adaptive Radix Trie mapping byte-sequence keys to values of
// type T. The zero Tree is empty and ready to use.
type Tree[T any] struct {
	root node.Ref[T]
	len  int
}

// Len returns the number of keys currently stored.
func (t *Tree[T]) Len() int { return t.len }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool { return t.len == 0 }

// Search looks up key, returning its value and true if present.
func (t *Tree[T]) Search(key []byte) (T, bool) {
	return tree.Search(t.root, key)
}

// Minimum returns the leaf holding the smallest key, or false if the tree is
// empty.
func (t *Tree[T]) Minimum() (*node.Leaf[T], bool) {
	return tree.Minimum(t.root)
}

// Maximum returns the leaf holding the largest key, or false if the tree is
// empty.
func (t *Tree[T]) Maximum() (*node.Leaf[T], bool) {
	return tree.Maximum(t.root)
}

// Insert adds key/value, allocating through a. If key is already present,
// its value is replaced, the old value is returned, and outcome is
// [Replaced]. If key's byte view is a prefix of (or has as a prefix) a key
// already stored, the tree is left unmodified and outcome is
// [PrefixConflict]. Otherwise outcome is [Inserted].
func (t *Tree[T]) Insert(a arena.AllocatorExt, key []byte, value T) (old T, outcome InsertOutcome) {
	old, replaced, err := tree.Insert(a, &t.root, key, value)
	switch {
	case err != nil:
		return old, PrefixConflict
	case replaced:
		return old, Replaced
	default:
		t.len++
		return old, Inserted
	}
}

// Delete removes key, allocating/releasing through a. It reports the
// removed value and true if key was present.
func (t *Tree[T]) Delete(a arena.AllocatorExt, key []byte) (T, bool) {
	value, ok := tree.Delete(a, &t.root, key)
	if ok {
		t.len--
	}
	return value, ok
}

// Iter returns a forward (ascending key-byte order) iterator over the whole
// tree. The aliasing contract of §4.8 applies: the tree must not be mutated
// while the iterator is alive.
func (t *Tree[T]) Iter() *tree.Iterator[T] {
	return tree.NewIterator(t.root)
}

// ReverseIter returns a reverse (descending key-byte order) iterator over
// the whole tree.
func (t *Tree[T]) ReverseIter() *tree.ReverseIterator[T] {
	return tree.NewReverseIterator(t.root)
}

// IterPrefix returns a forward iterator restricted to the keys beginning
// with prefix. An empty prefix is equivalent to [Tree.Iter].
func (t *Tree[T]) IterPrefix(prefix []byte) *tree.Iterator[T] {
	return tree.NewIterator(tree.Subtree(t.root, prefix))
}

// ReverseIterPrefix is the reverse-order analog of [Tree.IterPrefix].
func (t *Tree[T]) ReverseIterPrefix(prefix []byte) *tree.ReverseIterator[T] {
	return tree.NewReverseIterator(tree.Subtree(t.root, prefix))
}
