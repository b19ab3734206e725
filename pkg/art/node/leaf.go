package node

import (
	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/arena/slice"
)

// Leaf owns one key/value pair. It is reachable through exactly one trie
// path; its key is stored in full (never compressed), since the key's own
// bytes are what every ancestor's prefix is compressed against.
type Leaf[T any] struct {
	Key   slice.Slice[byte]
	Value T
}

// NewLeaf allocates a leaf holding a copy of key and value on a.
func NewLeaf[T any](a arena.Allocator, key []byte, value T) *Leaf[T] {
	return arena.New(a, Leaf[T]{slice.FromBytes(a, key), value})
}

// Ref returns a tagged reference to this leaf.
func (l *Leaf[T]) Ref() Ref[T] { return NewRef[T](TypeLeaf, l) }

// Type always returns [TypeLeaf].
func (*Leaf[T]) Type() Type { return TypeLeaf }

// Minimum returns l itself.
func (l *Leaf[T]) Minimum() *Leaf[T] { return l }

// Maximum returns l itself.
func (l *Leaf[T]) Maximum() *Leaf[T] { return l }

// Matches reports whether l's key equals key under byte-view equality.
func (l *Leaf[T]) Matches(key []byte) bool {
	return slice.EqualTo(l.Key, key)
}

// ByteAt returns the byte of l's key at position i, used by the witness-leaf
// prefix-reconstruction protocol (see the tree package).
func (l *Leaf[T]) ByteAt(i int) byte {
	return l.Key.Load(i)
}

// Release frees l's key storage and l itself.
func (l *Leaf[T]) Release(a arena.Allocator) {
	l.Key.Release(a)
	arena.Free(a, l)
}
