package tree

import (
	"errors"

	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
)

// ErrPrefixConflict is returned by [Insert] when the key being inserted is a
// strict byte-view prefix of an existing key, or vice versa. The no-prefix
// property is required of every key the trie holds; violating it would make
// a leaf ambiguous with an inner node along the same path. The trie is left
// unmodified.
var ErrPrefixConflict = errors.New("art: key is a byte-view prefix of an existing key, or vice versa")

// Insert adds key/value under *root, allocating through a. If key is
// already present, its value is replaced and the old value is returned with
// replaced set to true.
func Insert[T any](a arena.AllocatorExt, root *node.Ref[T], key []byte, value T) (old T, replaced bool, err error) {
	return insert(a, root, key, 0, value)
}

func insert[T any](a arena.AllocatorExt, cur *node.Ref[T], key []byte, depth int, value T) (old T, replaced bool, err error) {
	var zero T

	if cur.Empty() {
		*cur = node.NewLeaf(a, key, value).Ref()
		return zero, false, nil
	}

	if cur.IsLeaf() {
		return insertAtLeaf(a, cur, key, depth, value)
	}

	return insertAtInner(a, cur, key, depth, value)
}

func insertAtLeaf[T any](a arena.AllocatorExt, cur *node.Ref[T], key []byte, depth int, value T) (old T, replaced bool, err error) {
	var zero T

	leaf := cur.AsLeaf()
	if leaf.Matches(key) {
		old = leaf.Value
		leaf.Value = value
		return old, true, nil
	}

	existingLen := leaf.Key.Len()
	newLen := len(key)

	l := 0
	for depth+l < existingLen && depth+l < newLen && leaf.Key.Load(depth+l) == key[depth+l] {
		l++
	}

	if depth+l == existingLen || depth+l == newLen {
		return zero, false, ErrPrefixConflict
	}

	split := node.NewNode4[T](a)
	split.SetPrefix(key[depth : depth+l])

	newLeaf := node.NewLeaf(a, key, value)
	split.AddChild(leaf.Key.Load(depth+l), leaf.Ref())
	split.AddChild(key[depth+l], newLeaf.Ref())

	*cur = split.Ref()
	return zero, false, nil
}

func insertAtInner[T any](a arena.AllocatorExt, cur *node.Ref[T], key []byte, depth int, value T) (old T, replaced bool, err error) {
	var zero T

	inner := cur.AsInner()
	m := matchPrefix(inner, key, depth)

	if m.keyExhausted {
		return zero, false, ErrPrefixConflict
	}

	if !m.full {
		splitInner(a, cur, inner, key, depth, m, value)
		return zero, false, nil
	}

	depth += m.matched
	if depth >= len(key) {
		return zero, false, ErrPrefixConflict
	}

	b := key[depth]
	child := inner.FindChild(b)

	if child.Empty() {
		if inner.Full() {
			inner = inner.Grow(a)
			*cur = inner.Ref()
		}
		inner.AddChild(b, node.NewLeaf(a, key, value).Ref())
		return zero, false, nil
	}

	old, replaced, err = insert(a, &child, key, depth+1, value)
	if err == nil {
		inner.SetChild(b, child)
	}
	return old, replaced, err
}

// splitInner implements outcome (c): the header's prefix mismatched the key
// partway through. A new Node4 is installed at *cur carrying the matched
// prefix, with the old inner node re-parented under it (its own prefix
// trimmed past the mismatch point) alongside a fresh leaf for key.
func splitInner[T any](a arena.AllocatorExt, cur *node.Ref[T], inner node.Inner[T], key []byte, depth int, m prefixMatch[T], value T) {
	edgeByte := m.mismatchByte

	split := node.NewNode4[T](a)
	split.SetPrefix(key[depth : depth+m.matched])

	h := inner.Header()
	witness := m.witness
	h.TrimLeft(m.matched+1, func(i int) byte {
		if witness == nil {
			witness = inner.Minimum()
		}
		return witness.ByteAt(depth + i)
	})

	split.AddChild(edgeByte, inner.Ref())
	split.AddChild(key[depth+m.matched], node.NewLeaf(a, key, value).Ref())

	*cur = split.Ref()
}
