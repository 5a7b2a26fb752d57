package merkle

import (
	"encoding/binary"
	"fmt"

	"github.com/gfx-labs/go-ssz-core/merkle/bufpool"
	"github.com/prysmaticlabs/gohashtree"
)

// PackBytes zero-pads buf up to a multiple of BytesPerChunk, so it can
// be partitioned into whole chunks (spec.md §4.9 "Pack").
func PackBytes(buf []byte) []byte {
	rem := len(buf) % BytesPerChunk
	if rem == 0 {
		return buf
	}
	pad := BytesPerChunk - rem
	out := make([]byte, len(buf)+pad)
	copy(out, buf)
	return out
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 if n == 0.
func NextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}

// Depth returns the number of levels between the root and a perfect
// binary tree's leaves, given the leaf count (which must already be a
// power of two).
func Depth(leafCount uint64) int {
	d := 0
	for leafCount > 1 {
		leafCount >>= 1
		d++
	}
	return d
}

// MerkleizeChunks computes the root of a perfect binary tree whose
// bottom layer is chunks, virtually padded with precomputed zero
// subtrees out to leafCount leaves. leafCount must be a power of two.
//
// This is the in-place, level-by-level realization of spec.md §4.9's
// "Virtual-padded merkleize": real nodes are hashed in pairs
// left-to-right; once the right sibling of a pair falls past the
// last populated index, the corresponding zero-subtree root is
// substituted instead of being materialized. Grounded on
// github.com/gfx-labs/ssz's merkle_tree.ComputeMerkleRootRange,
// reworked to take an explicit leaf_count rather than a mutable
// cached tree, matching the pure-function requirement of spec.md §5.
func MerkleizeChunks(chunks []byte, leafCount uint64) ([32]byte, error) {
	if len(chunks)%BytesPerChunk != 0 {
		return [32]byte{}, fmt.Errorf("merkle: chunk buffer length %d is not a multiple of %d", len(chunks), BytesPerChunk)
	}
	if leafCount == 0 || (leafCount&(leafCount-1)) != 0 {
		return [32]byte{}, fmt.Errorf("merkle: leaf count %d is not a power of two", leafCount)
	}

	chunkCount := len(chunks) / BytesPerChunk
	depth := Depth(leafCount)
	if chunkCount == 0 {
		return ZeroHash(depth), nil
	}
	if leafCount == 1 {
		var out [32]byte
		copy(out[:], chunks)
		return out, nil
	}

	pooled := bufpool.Get(len(chunks))
	defer bufpool.Put(pooled)
	layer := pooled.B[:len(chunks)]
	copy(layer, chunks)

	// lastIndex is the index, within the current layer, of the last
	// node that was actually computed from real data rather than
	// substituted as a zero subtree.
	lastIndex := uint64(chunkCount - 1)
	for level := 0; level < depth; level++ {
		numRealNodes := lastIndex + 1
		numPairs := (numRealNodes + 1) / 2 // ceil(numRealNodes / 2)
		inputLen := numPairs * 2 * BytesPerChunk

		if uint64(len(layer)) < inputLen {
			// numRealNodes is odd: the last real node's sibling is
			// virtual. Substitute this level's zero-subtree root
			// instead of materializing it.
			pad := ZeroHash(level)
			layer = append(layer, pad[:]...)
		}

		outLen := int(numPairs) * BytesPerChunk
		if err := gohashtree.HashByteSlice(layer[:outLen], layer[:inputLen]); err != nil {
			return [32]byte{}, err
		}
		layer = layer[:outLen]
		lastIndex /= 2
	}

	var out [32]byte
	copy(out[:], layer[:BytesPerChunk])
	return out, nil
}

// Merkleize computes the hash-tree-root of chunks, optionally bounded
// by limit (a chunk-count capacity). If limit is given and the chunk
// count exceeds it, Merkleize returns a plain error naming both
// counts. The ssz package's HashTreeRoot methods return that error
// unchanged; they do not convert it to an InputExceedsLimitError.
func Merkleize(chunks []byte, limit *uint64) ([32]byte, error) {
	chunkCount := uint64(len(chunks) / BytesPerChunk)
	var leafCount uint64
	if limit != nil {
		if chunkCount > *limit {
			return [32]byte{}, fmt.Errorf("merkle: chunk count %d exceeds limit %d", chunkCount, *limit)
		}
		leafCount = NextPowerOfTwo(*limit)
	} else {
		leafCount = NextPowerOfTwo(chunkCount)
	}
	return MerkleizeChunks(chunks, leafCount)
}

// MixInLength computes SHA-256(root || pad32(length)), the decoration
// hash applied to the data root of lists and bitlists.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return HashPair(root, lengthChunk)
}

// MixInSelector computes SHA-256(root || pad32(selector)), the
// decoration hash applied to the inner root of a union.
func MixInSelector(root [32]byte, selector uint8) [32]byte {
	var selectorChunk [32]byte
	selectorChunk[0] = selector
	return HashPair(root, selectorChunk)
}
