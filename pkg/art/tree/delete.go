package tree

import (
	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
)

// Delete removes key from the trie rooted at *root, allocating/releasing
// through a. It reports the removed value and true if key was present.
func Delete[T any](a arena.AllocatorExt, root *node.Ref[T], key []byte) (T, bool) {
	return deleteFrom(a, root, key, 0)
}

func deleteFrom[T any](a arena.AllocatorExt, cur *node.Ref[T], key []byte, depth int) (T, bool) {
	var zero T

	if cur.Empty() {
		return zero, false
	}

	if cur.IsLeaf() {
		leaf := cur.AsLeaf()
		if !leaf.Matches(key) {
			return zero, false
		}

		value := leaf.Value
		leaf.Release(a)
		*cur = 0
		return value, true
	}

	inner := cur.AsInner()
	nodeDepth := depth

	m := matchPrefix(inner, key, depth)
	if !m.full {
		return zero, false
	}

	depth += m.matched
	if depth >= len(key) {
		return zero, false
	}

	b := key[depth]
	child := inner.FindChild(b)
	if child.Empty() {
		return zero, false
	}

	if child.IsLeaf() {
		leaf := child.AsLeaf()
		if !leaf.Matches(key) {
			return zero, false
		}

		value := leaf.Value
		leaf.Release(a)
		inner.RemoveChild(b)
		shrinkOrCollapse(a, cur, inner, key, nodeDepth)
		return value, true
	}

	value, ok := deleteFrom(a, &child, key, depth+1)
	if ok {
		inner.SetChild(b, child)
	}
	return value, ok
}

// shrinkOrCollapse runs after a child was removed from inner, installed at
// *cur: a Node4 whose count falls to 1 collapses into its sole surviving
// child (folding its own prefix and edge byte onto it); a Node4 whose count
// falls to 0 leaves *cur empty; every other class demotes via [node.Inner.Shrink]
// once its count reaches its class's lower bound.
func shrinkOrCollapse[T any](a arena.AllocatorExt, cur *node.Ref[T], inner node.Inner[T], key []byte, depth int) {
	if n4, ok := inner.(*node.Node4[T]); ok {
		switch n4.NumChildren() {
		case 0:
			n4.Release(a)
			*cur = 0
		case 1:
			collapse(a, cur, n4, depth)
		}
		return
	}

	if next := inner.Shrink(a); next != inner {
		*cur = next.Ref()
	}
}

// collapse merges n4 (now holding exactly one child) into its parent's edge,
// per §4.7: the surviving child replaces n4 at *cur, after n4's own prefix
// bytes and the edge byte leading to the child are prepended onto the
// child's prefix. A leaf child needs no such prepend: its full key already
// carries the complete path.
func collapse[T any](a arena.AllocatorExt, cur *node.Ref[T], n4 *node.Node4[T], depth int) {
	b := n4.Keys[0]
	child := n4.Children[0]

	if child.IsInner() {
		bytes := fullPrefixBytes[T](n4, depth)
		bytes = append(bytes, b)
		child.AsInner().Header().Prepend(bytes)
	}

	n4.Release(a)
	*cur = child
}

// fullPrefixBytes reconstructs inner's complete compressed prefix (which may
// exceed [node.InlinePrefixLen]), recovering any overflow from a witness
// leaf. depth is the key depth at which inner's prefix begins.
func fullPrefixBytes[T any](inner node.Inner[T], depth int) []byte {
	h := inner.Header()
	n := h.PrefixLen()
	inline := h.InlinePrefix()

	out := make([]byte, n)
	copy(out, inline)

	if n > len(inline) {
		witness := inner.Minimum()
		for i := len(inline); i < n; i++ {
			out[i] = witness.ByteAt(depth + i)
		}
	}

	return out
}
