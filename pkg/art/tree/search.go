package tree

import "github.com/wisptrie/art/pkg/art/node"

// Search looks up key starting from root, returning its value and true if
// present.
func Search[T any](root node.Ref[T], key []byte) (T, bool) {
	var zero T

	cur := root
	depth := 0

	for {
		if cur.Empty() {
			return zero, false
		}

		if cur.IsLeaf() {
			leaf := cur.AsLeaf()
			if leaf.Matches(key) {
				return leaf.Value, true
			}
			return zero, false
		}

		inner := cur.AsInner()
		m := matchPrefix(inner, key, depth)
		if !m.full {
			return zero, false
		}

		depth += m.matched
		if depth >= len(key) {
			return zero, false
		}

		child := inner.FindChild(key[depth])
		if child.Empty() {
			return zero, false
		}

		depth++
		cur = child
	}
}

// Minimum returns the leaf reachable by always taking the lowest-keyed
// child from root, or false if root is empty.
func Minimum[T any](root node.Ref[T]) (*node.Leaf[T], bool) {
	if root.Empty() {
		return nil, false
	}
	return root.AsNode().Minimum(), true
}

// Maximum returns the leaf reachable by always taking the highest-keyed
// child from root, or false if root is empty.
func Maximum[T any](root node.Ref[T]) (*node.Leaf[T], bool) {
	if root.Empty() {
		return nil, false
	}
	return root.AsNode().Maximum(), true
}
