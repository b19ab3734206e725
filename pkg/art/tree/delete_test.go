package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
)

func buildLinear(t *testing.T, a arena.AllocatorExt, root *node.Ref[int], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, _, err := Insert(a, root, []byte{byte(i)}, i)
		require.NoError(t, err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	a := &arena.Arena{}
	var root node.Ref[int]
	buildLinear(t, a, &root, 3)

	_, ok := Delete(a, &root, []byte{99})
	require.False(t, ok)
}

func TestDeleteShrinkChain(t *testing.T) {
	a := &arena.Arena{}
	var root node.Ref[int]
	buildLinear(t, a, &root, 49)
	require.True(t, root.IsNode256())

	// 256 -> 48: the first delete reaches the 48-child boundary and demotes
	// the root; the rest stay within Node48's range, down to 17 children.
	for i := 48; i >= 17; i-- {
		v, ok := Delete(a, &root, []byte{byte(i)})
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, root.IsNode48())
	require.Equal(t, 17, root.AsNode48().NumChildren())

	// 48 -> 16.
	for i := 16; i >= 5; i-- {
		_, ok := Delete(a, &root, []byte{byte(i)})
		require.True(t, ok)
	}
	require.True(t, root.IsNode16())
	require.Equal(t, 5, root.AsNode16().NumChildren())

	// 16 -> 4.
	_, ok := Delete(a, &root, []byte{4})
	require.True(t, ok)
	require.True(t, root.IsNode4())
	require.Equal(t, 4, root.AsNode4().NumChildren())

	// Node4 falling to 1 child collapses rather than shrinking further.
	_, ok = Delete(a, &root, []byte{3})
	require.True(t, ok)
	_, ok = Delete(a, &root, []byte{2})
	require.True(t, ok)
	_, ok = Delete(a, &root, []byte{1})
	require.True(t, ok)

	require.True(t, root.IsLeaf())
	v, ok := Search(root, []byte{0})
	require.True(t, ok)
	require.Equal(t, 0, v)

	// Deleting the last key empties the tree.
	_, ok = Delete(a, &root, []byte{0})
	require.True(t, ok)
	require.True(t, root.Empty())
}

func TestDeleteCollapseRestoresFullPrefix(t *testing.T) {
	a := &arena.Arena{}
	var root node.Ref[int]

	// Three keys sharing a prefix longer than node.InlinePrefixLen, so every
	// prefix match against the root reads the bytes past the inline buffer
	// from a witness leaf. The final collapse leaves a leaf child, which
	// needs no Header.Prepend.
	common := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	keyA := append(append([]byte{}, common...), 1)
	keyB := append(append([]byte{}, common...), 2)
	keyC := append(append([]byte{}, common...), 3)

	for _, kv := range []struct {
		key []byte
		val int
	}{{keyA, 1}, {keyB, 2}, {keyC, 3}} {
		_, _, err := Insert(a, &root, kv.key, kv.val)
		require.NoError(t, err)
	}

	_, ok := Delete(a, &root, keyB)
	require.True(t, ok)
	_, ok = Delete(a, &root, keyC)
	require.True(t, ok)

	// Only keyA remains; the collapse must have put its leaf in the root's
	// place with the full key intact.
	require.True(t, root.IsLeaf())
	v, ok := Search(root, keyA)
	require.True(t, ok)
	require.Equal(t, 1, v)
}
