// Package node implements the five ART node representations (one leaf, four
// adaptively-sized inner nodes) and the tagged pointer used to refer to any
// of them.
package node

// InlinePrefixLen is the number of prefix bytes stored inline on every inner
// node header. Prefixes longer than this are tracked by true length only;
// the bytes beyond InlinePrefixLen are recovered on demand from a witness
// leaf reachable under the node (see the tree package's prefix matching).
//
// Eight bytes, with a separate true-length field, was picked over a wider
// fourteen-byte packed layout: it keeps Header small and leaves the
// remaining header fields (child count, padding) naturally word-aligned.
const InlinePrefixLen = 8

// Header is the common header of every inner node: the number of children
// currently installed, and the node's compressed key prefix.
//
// Header carries no information about which node class it belongs to or
// about the value type stored in the trie; it is shared verbatim across
// Node4/16/48/256.
type Header struct {
	numChildren uint16
	prefixLen   uint32
	prefix      [InlinePrefixLen]byte
}

// NumChildren returns the number of children currently installed.
func (h *Header) NumChildren() int { return int(h.numChildren) }

// SetNumChildren sets the number of children installed.
func (h *Header) SetNumChildren(n int) { h.numChildren = uint16(n) }

// PrefixLen returns the true length of the node's compressed prefix, which
// may exceed [InlinePrefixLen].
func (h *Header) PrefixLen() int { return int(h.prefixLen) }

// InlinePrefix returns the leading bytes of the prefix held inline, i.e. the
// first min(PrefixLen(), InlinePrefixLen) bytes.
func (h *Header) InlinePrefix() []byte {
	n := int(h.prefixLen)
	if n > InlinePrefixLen {
		n = InlinePrefixLen
	}
	return h.prefix[:n]
}

// SetPrefix replaces the node's prefix outright with full, taking its entire
// length as the true length. full may be longer than InlinePrefixLen; only
// the leading InlinePrefixLen bytes are retained inline.
func (h *Header) SetPrefix(full []byte) {
	h.prefixLen = uint32(len(full))
	n := copy(h.prefix[:], full)
	for i := n; i < InlinePrefixLen; i++ {
		h.prefix[i] = 0
	}
}

// Prepend extends the prefix by inserting bytes before its current content,
// as used by deletion's collapse step (see the tree package). It does not
// need to know the discarded tail of a prefix longer than InlinePrefixLen:
// only the leading InlinePrefixLen bytes of the result are ever observable
// inline, and those are fully determined by bytes and by the old inline
// prefix.
func (h *Header) Prepend(bytes []byte) {
	newLen := uint32(len(bytes)) + h.prefixLen

	var next [InlinePrefixLen]byte
	if len(bytes) >= InlinePrefixLen {
		copy(next[:], bytes[:InlinePrefixLen])
	} else {
		copy(next[:], bytes)
		copy(next[len(bytes):], h.prefix[:InlinePrefixLen-len(bytes)])
	}

	h.prefix = next
	h.prefixLen = newLen
}

// TrimLeft discards the first n bytes of the prefix, as used by insertion's
// split-at-inner-node outcome (see the tree package). byteAt must return the
// byte at position i of the prefix as it stood before trimming (i in
// [0, PrefixLen())); it is consulted only for positions beyond what is held
// inline, which the caller typically serves from a witness leaf.
func (h *Header) TrimLeft(n int, byteAt func(i int) byte) {
	newLen := int(h.prefixLen) - n

	inlineLen := newLen
	if inlineLen > InlinePrefixLen {
		inlineLen = InlinePrefixLen
	}

	var next [InlinePrefixLen]byte
	for i := 0; i < inlineLen; i++ {
		pos := n + i
		if pos < InlinePrefixLen {
			next[i] = h.prefix[pos]
		} else {
			next[i] = byteAt(pos)
		}
	}

	h.prefix = next
	h.prefixLen = uint32(newLen)
}
