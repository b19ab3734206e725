package tree

import "github.com/wisptrie/art/pkg/art/node"

// Subtree returns the root of the subtrie holding exactly the keys that
// begin with prefix, or the empty Ref if no key under root begins with it.
// It walks the same header-prefix comparison as Search/Delete, but treats
// the key running out before the node's prefix does as a match (the prefix
// query is shorter than the path to this node) rather than a miss.
func Subtree[T any](root node.Ref[T], prefix []byte) node.Ref[T] {
	cur := root
	depth := 0

	for {
		if cur.Empty() {
			return 0
		}

		if cur.IsLeaf() {
			if hasPrefixAt(cur.AsLeaf(), prefix, depth) {
				return cur
			}
			return 0
		}

		inner := cur.AsInner()
		m := matchPrefix(inner, prefix, depth)

		if m.keyExhausted {
			// Every remaining byte of prefix matched before the node's own
			// prefix ran out: the whole subtree rooted at cur qualifies.
			return cur
		}
		if !m.full {
			return 0
		}

		depth += m.matched
		if depth >= len(prefix) {
			return cur
		}

		child := inner.FindChild(prefix[depth])
		if child.Empty() {
			return 0
		}

		depth++
		cur = child
	}
}

// hasPrefixAt reports whether leaf's key matches prefix byte-for-byte at
// every position prefix specifies. depth is how much of prefix the caller
// already verified via inner-node descent: only positions [depth,len(prefix))
// still need comparing, since prefix and the leaf's key share the same
// absolute byte addressing.
func hasPrefixAt[T any](leaf *node.Leaf[T], prefix []byte, depth int) bool {
	if leaf.Key.Len() < len(prefix) {
		return false
	}
	for i := depth; i < len(prefix); i++ {
		if leaf.Key.Load(i) != prefix[i] {
			return false
		}
	}
	return true
}
