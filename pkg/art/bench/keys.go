// Package bench generates pseudo-random byte-sequence key sets for
// exercising the trie's growth/shrink transitions and ordering properties at
// scale, and benchmarks the core operations over them.
package bench

import "github.com/dolthub/maphash"

// Keys generates n pseudo-random byte-sequence keys of the given length.
// The output is not deterministic: the hasher behind it is freshly seeded at
// random on every call, so two calls with the same seed return different
// keys; seed only perturbs the counters being hashed. Each key's leading
// bytes are its generating counter's hash, so ascending counters don't produce keys that are already
// sorted (which would defeat growth/shrink and ordering tests that want
// varied insertion permutations); the trailing bytes are a further
// hash-chain expansion so length can exceed 8.
//
// n should stay well under 2^(8*length) for keys to come out distinct in
// practice; callers that need a hard distinctness guarantee should dedupe
// the result themselves (see property_test.go).
func Keys(seed uint64, n int, length int) [][]byte {
	h := maphash.NewSeed(maphash.NewHasher[uint64]())

	out := make([][]byte, n)
	for i := range out {
		mixed := h.Hash(uint64(i) ^ seed)

		key := make([]byte, length)
		for j := range key {
			key[j] = byte(mixed >> 56)
			mixed = mixed*6364136223846793005 + 1442695040888963407
		}
		out[i] = key
	}
	return out
}
