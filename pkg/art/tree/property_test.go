package tree

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisptrie/art/pkg/arena"
	"github.com/wisptrie/art/pkg/art/node"
)

// fixedLengthKeys returns n distinct keys of the given length, drawn from a
// fixed-seed generator. Equal length rules out any key being a byte-view
// prefix of another, so every generated set satisfies the no-prefix-conflict
// invariant without the caller needing to filter for it.
func fixedLengthKeys(rng *rand.Rand, n, length int) [][]byte {
	seen := make(map[string]bool, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		k := make([]byte, length)
		for i := range k {
			k[i] = byte(rng.Intn(256))
		}
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		keys = append(keys, k)
	}
	return keys
}

// TestPropertyRoundTrip inserts a random distinct key set and checks that
// every key resolves to its own value and that ascending iteration order
// matches the lexicographic order of the keys.
func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		a := &arena.Arena{}
		var root node.Ref[int]

		n := 1 + rng.Intn(200)
		length := 1 + rng.Intn(12)
		keys := fixedLengthKeys(rng, n, length)

		for i, k := range keys {
			_, _, err := Insert(a, &root, k, i)
			require.NoError(t, err)
		}

		for i, k := range keys {
			v, ok := Search(root, k)
			require.True(t, ok)
			require.Equal(t, i, v)
		}

		sorted := append([][]byte{}, keys...)
		sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

		want := make([]int, len(sorted))
		index := make(map[string]int, len(keys))
		for i, k := range keys {
			index[string(k)] = i
		}
		for i, k := range sorted {
			want[i] = index[string(k)]
		}

		var got []int
		it := NewIterator(root)
		for {
			l, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, l.Value)
		}
		require.Equal(t, want, got)

		// Reverse iteration is the exact mirror.
		reversed := make([]int, len(want))
		for i, v := range want {
			reversed[len(want)-1-i] = v
		}
		var gotRev []int
		rit := NewReverseIterator(root)
		for {
			l, ok := rit.Next()
			if !ok {
				break
			}
			gotRev = append(gotRev, l.Value)
		}
		require.Equal(t, reversed, gotRev)
	}
}

// TestPropertyDeleteRoundTrip inserts a random key set, deletes it in a
// different random order, and checks that deleted keys are no longer found
// while the rest remain intact, ending with an empty tree.
func TestPropertyDeleteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 20; trial++ {
		a := &arena.Arena{}
		var root node.Ref[int]

		n := 1 + rng.Intn(150)
		length := 1 + rng.Intn(10)
		keys := fixedLengthKeys(rng, n, length)

		for i, k := range keys {
			_, _, err := Insert(a, &root, k, i)
			require.NoError(t, err)
		}

		order := rng.Perm(len(keys))
		deleted := make(map[int]bool, len(keys))

		for _, idx := range order {
			v, ok := Delete(a, &root, keys[idx])
			require.True(t, ok)
			require.Equal(t, idx, v)
			deleted[idx] = true

			for j, k := range keys {
				_, ok := Search(root, k)
				require.Equal(t, !deleted[j], ok)
			}
		}

		require.True(t, root.Empty())
	}
}

// TestPropertyInsertionOrderInvariance checks that the ascending leaf
// sequence produced by iteration does not depend on the order keys were
// inserted in.
func TestPropertyInsertionOrderInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(100)
		length := 1 + rng.Intn(10)
		keys := fixedLengthKeys(rng, n, length)

		buildAndCollect := func(order []int) []string {
			a := &arena.Arena{}
			var root node.Ref[int]
			for _, idx := range order {
				_, _, err := Insert(a, &root, keys[idx], idx)
				require.NoError(t, err)
			}

			var got []string
			it := NewIterator(root)
			for {
				l, ok := it.Next()
				if !ok {
					break
				}
				got = append(got, string(l.Key.Raw()))
			}
			return got
		}

		identity := make([]int, len(keys))
		for i := range identity {
			identity[i] = i
		}
		shuffled := rng.Perm(len(keys))

		require.Equal(t, buildAndCollect(identity), buildAndCollect(shuffled))
	}
}
