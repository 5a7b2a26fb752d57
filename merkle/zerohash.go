// Package merkle implements the virtual-padded binary Merkle tree used
// by SSZ's hash-tree-root, plus the length/selector decoration
// mix-ins, grounded on github.com/gfx-labs/ssz's merkle_tree package
// (zero-hash precomputation, gohashtree batch hashing) and reworked
// into the pure, stateless form spec.md §4.9 and §5 call for: every
// routine here is a function of its inputs, with no mutable tree
// cached across calls.
package merkle

import (
	"crypto/sha256"
	"sync"
)

// BytesPerChunk is the atomic Merkleization leaf size.
const BytesPerChunk = 32

// MaxTreeDepth bounds the precomputed zero-hash table. SSZ lists and
// vectors in practice never approach 2^64 elements; 64 levels covers
// every realistic declared capacity.
const MaxTreeDepth = 64

var zeroHashesOnce = sync.OnceValue(computeZeroHashes)

// ZeroHashes returns the precomputed table of zero-subtree roots:
// ZeroHashes()[0] is the all-zero chunk, ZeroHashes()[d+1] is
// SHA-256(ZeroHashes()[d] || ZeroHashes()[d]). The table is computed
// once and is read-only thereafter (spec.md §5).
func ZeroHashes() *[MaxTreeDepth + 1][BytesPerChunk]byte {
	return zeroHashesOnce()
}

func computeZeroHashes() *[MaxTreeDepth + 1][BytesPerChunk]byte {
	var table [MaxTreeDepth + 1][BytesPerChunk]byte
	for d := 0; d < MaxTreeDepth; d++ {
		h := sha256.New()
		h.Write(table[d][:])
		h.Write(table[d][:])
		h.Sum(table[d+1][:0])
	}
	return &table
}

// ZeroHash returns the root of a perfect subtree of depth d whose
// leaves are all zero. Panics if d exceeds MaxTreeDepth: that is a
// violated internal invariant (spec.md §7), never reachable from
// malformed user input since every caller bounds d by log2 of a
// length it already validated.
func ZeroHash(d int) [BytesPerChunk]byte {
	if d < 0 || d > MaxTreeDepth {
		panic("merkle: zero-hash depth out of range")
	}
	return ZeroHashes()[d]
}

// HashPair returns SHA-256(a || b).
func HashPair(a, b [BytesPerChunk]byte) [BytesPerChunk]byte {
	var out [BytesPerChunk]byte
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	h.Sum(out[:0])
	return out
}
