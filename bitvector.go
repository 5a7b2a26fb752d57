package ssz

import (
	"github.com/gfx-labs/go-ssz-core/merkle"
)

// Bitvector is the SSZ `Bitvector<N>` type: a fixed N-bit vector, bits
// packed least-significant-bit-first within each octet, wire length
// ⌈N/8⌉ (spec.md §4.2). Grounded on github.com/gfx-labs/ssz's
// flexssz.EncodeBitVector/DecodeBitVector, rewritten to return the
// taxonomy errors of spec.md §7 and to compute its own hash-tree-root
// rather than delegating to a package-level helper.
type Bitvector struct {
	N    uint64
	bits []byte // ⌈N/8⌉ bytes, unused high bits of the last byte are zero
}

// NewBitvector allocates a zero-valued Bitvector<n>. n must be >= 1
// (spec.md §3 "Bitvector<0> is illegal").
func NewBitvector(n uint64) (*Bitvector, error) {
	if n == 0 {
		return nil, NewInvalidBoundError(0, "Bitvector length must be >= 1")
	}
	return &Bitvector{N: n, bits: make([]byte, byteLen(n))}, nil
}

func byteLen(bitLen uint64) int {
	return int((bitLen + 7) / 8)
}

// Get reports the bit at index i.
func (b *Bitvector) Get(i uint64) bool {
	return b.bits[i/8]&(1<<(i%8)) != 0
}

// Set assigns the bit at index i.
func (b *Bitvector) Set(i uint64, v bool) {
	if v {
		b.bits[i/8] |= 1 << (i % 8)
	} else {
		b.bits[i/8] &^= 1 << (i % 8)
	}
}

func (b *Bitvector) IsVariableSize() bool { return false }
func (b *Bitvector) SizeHint() int        { return byteLen(b.N) }
func (b *Bitvector) IsComposite() bool    { return true }
func (b *Bitvector) ChunkCount() int {
	return int((b.N + 255) / 256)
}

func (b *Bitvector) MarshalSSZTo(dst []byte) ([]byte, error) {
	return append(dst, b.bits...), nil
}

func (b *Bitvector) UnmarshalSSZ(data []byte) error {
	want := byteLen(b.N)
	if len(data) < want {
		return NewExpectedFurtherInputError(len(data), want)
	}
	if len(data) > want {
		return NewAdditionalInputError(len(data), want)
	}
	extraBits := b.N % 8
	if extraBits != 0 {
		mask := byte(1<<extraBits) - 1
		if data[want-1]&^mask != 0 {
			return NewInvalidByteError(data[want-1])
		}
	}
	bits := make([]byte, want)
	copy(bits, data)
	b.bits = bits
	return nil
}

func (b *Bitvector) HashTreeRoot() ([32]byte, error) {
	packed := merkle.PackBytes(b.bits)
	limit := uint64(b.ChunkCount())
	return merkle.Merkleize(packed, &limit)
}
