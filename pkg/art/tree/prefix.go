// Package tree implements the descent, insertion, deletion, and ordered
// iteration algorithms over the node representations in [node], tying them
// together into a trie keyed by byte slices.
package tree

import "github.com/wisptrie/art/pkg/art/node"

// prefixMatch is the result of comparing an inner node's compressed prefix
// against a key starting at some depth.
type prefixMatch[T any] struct {
	// matched is the number of prefix bytes that compared equal.
	matched int

	// full is true if every byte of the prefix matched.
	full bool

	// keyExhausted is true if the key ran out before the prefix did, with
	// every available byte matching. This can never be a genuine mismatch:
	// it means the key being looked up is a strict prefix of the path
	// through this node.
	keyExhausted bool

	// mismatchByte is the prefix byte at position matched, valid only when
	// full and keyExhausted are both false.
	mismatchByte byte

	// witness is the leaf consulted to recover prefix bytes past the
	// header's inline buffer, if any were needed. Non-nil only when the
	// comparison read past [node.InlinePrefixLen].
	witness *node.Leaf[T]
}

// matchPrefix compares inner's header prefix against key starting at depth,
// descending to a witness leaf to recover any bytes beyond the header's
// inline buffer.
func matchPrefix[T any](inner node.Inner[T], key []byte, depth int) prefixMatch[T] {
	h := inner.Header()
	inline := h.InlinePrefix()

	plen := h.PrefixLen()
	avail := len(key) - depth
	limit := plen
	if avail < limit {
		limit = avail
	}

	var witness *node.Leaf[T]
	byteAt := func(i int) byte {
		if i < len(inline) {
			return inline[i]
		}
		if witness == nil {
			witness = inner.Minimum()
		}
		return witness.ByteAt(depth + i)
	}

	for i := 0; i < limit; i++ {
		pb := byteAt(i)
		if pb != key[depth+i] {
			return prefixMatch[T]{matched: i, mismatchByte: pb, witness: witness}
		}
	}

	if limit == plen {
		return prefixMatch[T]{matched: plen, full: true}
	}

	return prefixMatch[T]{matched: limit, keyExhausted: true}
}

// longestCommonPrefix returns the length of the longest common prefix of a
// and b, both taken starting at depth.
func longestCommonPrefix(a, b []byte, depth int) int {
	n := len(a) - depth
	if m := len(b) - depth; m < n {
		n = m
	}

	i := 0
	for i < n && a[depth+i] == b[depth+i] {
		i++
	}
	return i
}
